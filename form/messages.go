package form

// Status and field texts shown by every surface. The success default is
// the scoring backend's own wording, used when it sends no message.
const (
	MsgFileRequired    = "Please choose a CSV file."
	MsgFixFields       = "Please fix the highlighted fields."
	MsgUploading       = "Uploading your file..."
	MsgDefaultSuccess  = "Result will be sent to your email"
	MsgDefaultFailure  = "The server could not process your submission."
	MsgConnectionError = "Error connecting to server. Please try again later."

	// NoFileLabel is what the file display shows before a file is
	// chosen and again after a successful reset.
	NoFileLabel = "No file chosen"
)
