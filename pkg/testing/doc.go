// Package testing provides a testing SDK for using echod in Go tests.
//
// This package makes it easy to stand up an in-process echo server and
// assert on the requests your code sends to it.
//
// # Basic Usage
//
// Create an echo server and point the code under test at it:
//
//	func TestMyClient(t *testing.T) {
//	    echo := echodtest.New(t)
//
//	    resp, err := http.Get(echo.URL() + "/users/123?verbose=1")
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer resp.Body.Close()
//
//	    echo.AssertCalled(t, "GET", "/users/123")
//	}
//
// The server mirrors every request back, so the response carries the
// headers and body your code sent. Requests are also recorded for
// after-the-fact assertions:
//
//	requests := echo.Requests()
//	requests[0].AssertHeader(t, "Authorization", "Bearer token123")
//	requests[0].AssertJSONBody(t, map[string]string{"name": "Test"})
//
// # Scripted Responses
//
// Control headers on the request select the response status and body,
// which turns the echo server into a one-line stub:
//
//	req, _ := http.NewRequest("GET", echo.URL()+"/flaky", nil)
//	req.Header.Set("internal.status-code", "503")
//	req.Header.Set("internal.response-body", `{"error": "try later"}`)
//
// # Resetting Between Cases
//
// Reset clears the recorded history so call counts start from zero:
//
//	echo.Reset()
//
// Import under a name that does not collide with the standard library:
//
//	import echodtest "github.com/getechod/echod/pkg/testing"
package testing
