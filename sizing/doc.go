// Package sizing estimates how many bytes a record occupies in DynamoDB so
// quotas can be enforced and usage reported without asking the store.
//
// The estimate follows DynamoDB's published item size rules: attribute names
// count their UTF-8 length, strings their UTF-8 length, numbers one byte per
// two significant digits plus one, booleans one byte, binaries their raw
// length, and lists and maps three bytes of overhead plus their contents.
// Null payloads cost nothing unless WithStoreNullAccounting is used.
package sizing
