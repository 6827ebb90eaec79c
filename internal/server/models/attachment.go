package models

// Attachment is a stored binary object together with the label it was
// saved under.
type Attachment struct {
	Ref         string
	Label       string
	ContentType string
	Data        []byte
}
