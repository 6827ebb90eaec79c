package common

import "encoding/base64"

const (
	// grpcMessageSlack covers the non-payload part of a photo message.
	grpcMessageSlack = 64 << 10
	// httpBodySlack covers multipart framing and the JSON envelope.
	httpBodySlack = 1 << 20
)

// GRPCMessageLimit is the message size both ends of the gRPC connection
// must accept so a photo of maxUploadBytes can travel in either direction.
func GRPCMessageLimit(maxUploadBytes int64) int {
	return int(maxUploadBytes) + grpcMessageSlack
}

// HTTPUploadBodyLimit is the request body cap for a photo upload. The JSON
// form carries the photo base64 encoded, so the cap is sized for that.
func HTTPUploadBodyLimit(maxUploadBytes int64) int64 {
	return int64(base64.StdEncoding.EncodedLen(int(maxUploadBytes))) + httpBodySlack
}
