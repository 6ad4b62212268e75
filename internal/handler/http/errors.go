package http

import "errors"

// errNoRequesterInContext signals that an authenticated handler ran without
// the session middleware having stored the resolved user. This is a routing
// mistake, surfaced as an internal error.
var errNoRequesterInContext = errors.New("no requester in request context")
