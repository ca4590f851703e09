/*
Package storagemodels defines the data structures shared across storemeter.

Value:
A tagged union over the attribute shapes the service persists. Build values
with the constructors and inspect them through Kind and the typed accessors:

	rec := storagemodels.Record{
	    "name": storagemodels.String("Ada"),
	    "age":  storagemodels.Int(36),
	    "tags": storagemodels.List(storagemodels.String("a"), storagemodels.String("b")),
	}

Key and KeySchema:
A Key holds only String and Number attributes. The KeySchema declared by the
calling service fixes which attributes a key has and their canonical order:

	schema := storagemodels.KeySchema{
	    {Name: "PK", Kind: storagemodels.KindString},
	    {Name: "SK", Kind: storagemodels.KindString},
	}

Conversions:
FromItem/ToItem and FromAttributeValue/ToAttributeValue translate to and from
the aws-sdk-go-v2 DynamoDB attribute types. RecordFromJSON reads plain JSON.

QueryParams, Page and ScanOptions describe paged reads against a table.
*/
package storagemodels
