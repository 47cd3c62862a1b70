// Package messages holds the payload record types exchanged over rpcwire.
//
// Each type has a DecodeX function and an Encode method following the record
// package conventions, a Size method returning the exact encoded length, and
// a Schema variable describing the same layout for dynamic use.
package messages
