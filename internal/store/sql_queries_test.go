package store

import (
	"strings"
	"testing"
)

func TestBuildListUsersQuery_NoFilter(t *testing.T) {
	query, args, err := buildListUsersQuery(UserFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
	if strings.Contains(query, "password_hash") {
		t.Error("password_hash must not appear in the listing projection")
	}
	if !strings.Contains(query, "ORDER BY username ASC") {
		t.Errorf("expected ordering by username, got %q", query)
	}
	if strings.Contains(query, "WHERE") {
		t.Errorf("expected no WHERE clause, got %q", query)
	}
}

func TestBuildListUsersQuery_AdminOnly(t *testing.T) {
	query, args, err := buildListUsersQuery(UserFilter{AdminOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "is_admin = $1") {
		t.Errorf("expected admin predicate, got %q", query)
	}
	if len(args) != 1 || args[0] != true {
		t.Errorf("expected single boolean arg, got %v", args)
	}
}

func TestBuildListProjectsQuery_NoFilter(t *testing.T) {
	query, args, err := buildListProjectsQuery(ProjectFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
	if !strings.Contains(query, "ORDER BY name ASC") {
		t.Errorf("expected ordering by name, got %q", query)
	}
}

func TestBuildListProjectsQuery_OwnerFilter(t *testing.T) {
	ownerID := int64(42)

	query, args, err := buildListProjectsQuery(ProjectFilter{OwnerID: &ownerID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "owner_id = $1") {
		t.Errorf("expected owner predicate, got %q", query)
	}
	if len(args) != 1 || args[0] != ownerID {
		t.Errorf("expected single owner arg, got %v", args)
	}
}
