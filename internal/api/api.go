// Package api holds the request and response shapes of the HTTP surface.
// Storage records never cross this boundary directly, they are mapped here.
package api

// Response is the envelope every operation returns: an ok flag and a
// nullable error message.
type Response struct {
	Ok    bool    `json:"ok"`
	Error *string `json:"error"`
}

func OK() Response {
	return Response{Ok: true}
}

func Fail(message string) Response {
	return Response{Ok: false, Error: &message}
}
