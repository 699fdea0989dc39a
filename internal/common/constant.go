package common

// The four document collections the remote store serves.
const (
	CollectionRecords  = "records"
	CollectionWishlist = "wishlist-items"
	CollectionConfig   = "shared-config"
	CollectionMeta     = "meta"
)

// Singleton document identifiers.
const (
	SharedConfigID = "shared"
	HighScoreID    = "tennis"
)
