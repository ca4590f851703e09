/*
Package errors provides semantic error types for storemeter.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrBadPaginationToken = errors.New("next page token invalid")
	    ErrNotFound           = errors.New("not found")
	    ErrAlreadyExists      = errors.New("already exists")
	    ErrInvalidInput       = errors.New("invalid input")
	    ErrQuotaExceeded      = errors.New("storage quota exceeded")
	)

Usage:

	key, err := codec.Decode(r.URL.Query().Get("nextPageToken"))
	if err != nil {
	    if errors.IsBadPaginationToken(err) {
	        // Respond 400; the message is safe to show to clients
	        return badRequest(err.Error())
	    }
	    return err
	}

A BadPaginationTokenError always carries the same message so clients cannot
learn which check rejected their token. The underlying reason is available to
server-side logging through errors.Unwrap.
*/
package errors
