// Package pixbox defines the Storage RPC service and its typed client.
//
// Calls travel over gRPC with content-subtype "cbor", so image bytes are
// carried as CBOR byte strings without any text encoding.
package pixbox
