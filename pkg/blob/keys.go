package blob

// Buckets used by the pipeline.
const (
	BucketDocuments = "documents"
	BucketOCR       = "ocr"
)

// KeyOriginal is the key of a document's uploaded PDF.
func KeyOriginal(documentID string) string {
	return documentID + "/original.pdf"
}

// KeyOCRBlocks is the key of a document's OCR block layout JSON.
func KeyOCRBlocks(documentID string) string {
	return documentID + "/blocks.json"
}

// KeyOCRText is the key of a document's flat OCR text.
func KeyOCRText(documentID string) string {
	return documentID + "/text.txt"
}
