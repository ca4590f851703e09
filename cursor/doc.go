/*
Package cursor issues and consumes opaque pagination tokens.

A token encodes the key of the last item a client has seen so that the next
request can resume the scan after it, without exposing the table's key layout
in a readable form.

	codec := cursor.MustNew(storagemodels.KeySchema{
	    {Name: "PK", Kind: storagemodels.KindString},
	    {Name: "SK", Kind: storagemodels.KindString},
	})

	token, err := codec.GetStartKeyToken(ctx, out.LastEvaluatedKey)

	startKey, err := codec.GetStartKey(ctx, r.URL.Query().Get("nextPageToken"))
	if errors.IsBadPaginationToken(err) {
	    // 400 Bad Request
	}

Tokens are the key's attributes as a JSON object in schema order, base64url
encoded without padding, so they can be placed in a query string as is.
Decoding is strict: the attribute set and kinds must match the schema
exactly. Every failure, including a rejected Validator, produces the same
BadPaginationTokenError so clients cannot probe the key structure.

Typed wraps a Codec for callers that describe their key as a struct with
`dynamodbav` tags.
*/
package cursor
