package opds

// Common MIME types used within OPDS.
const (
	MimeOPDSFeed        = "application/opds+json"
	MimeOPDSPublication = "application/opds-publication+json"
)

// RecommendedImageTypes is the set of image MIME types clients are expected
// to support. Each publication should provide at least one image in one of
// these types.
var RecommendedImageTypes = []string{
	"image/jpeg",
	"image/webp",
	"image/avif",
	"image/png",
	"image/jxl",
	"image/gif",
}
