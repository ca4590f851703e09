/*
Package registry keeps the key schema of each table whose pages are served
with cursors.

	reg := registry.NewSchemaRegistry()
	err := reg.Register("apps", storagemodels.KeySchema{
	    {Name: "PK", Kind: storagemodels.KindString},
	    {Name: "SK", Kind: storagemodels.KindString},
	})

The registry is safe for concurrent use and is usually populated from
configuration with FromConfig.
*/
package registry
