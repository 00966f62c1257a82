package types

import "cosmossdk.io/collections"

var (
	// DocumentsKey saves DID documents keyed by account.
	DocumentsKey = collections.NewPrefix(0)

	// DocumentsName is the name of the documents collection.
	DocumentsName = "documents"
)

const (
	ModuleName = "didregistry"

	StoreKey = ModuleName

	// DIDMethodPrefix is prepended to the account to form the DID.
	DIDMethodPrefix = "did:daic:"
)
