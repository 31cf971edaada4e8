package pdf

const (
	// PDFExtension is the file extension expected on input documents
	PDFExtension = ".pdf"

	// PDFMimeType is the detected media type expected from input documents
	PDFMimeType = "application/pdf"
)
