package capture

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// Channel identifies how an image reached the widget
type Channel string

const (
	ChannelFile  Channel = "file"
	ChannelDrop  Channel = "drop"
	ChannelPaste Channel = "paste"
)

// ParseChannel converts a form value into a Channel. Empty means file.
func ParseChannel(value string) (Channel, error) {
	switch Channel(strings.ToLower(strings.TrimSpace(value))) {
	case "", ChannelFile:
		return ChannelFile, nil
	case ChannelDrop:
		return ChannelDrop, nil
	case ChannelPaste:
		return ChannelPaste, nil
	}
	return "", fmt.Errorf("unknown input channel %q", value)
}

// Source is a file-like input offered to the widget
type Source struct {
	Channel   Channel
	Name      string
	MediaType string
	Body      io.Reader
}

// IsImage reports whether the source declares an image media type
func (s Source) IsImage() bool {
	return strings.HasPrefix(s.MediaType, "image/")
}

// FirstImage picks the first clipboard item whose type mentions an image,
// the same rule a browser paste handler applies to clipboard items.
func FirstImage(items []Source) (Source, bool) {
	for _, item := range items {
		if strings.Contains(item.MediaType, "image") {
			return item, true
		}
	}
	return Source{}, false
}

// DataURI encodes data as a base64 data URI
func DataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// PayloadFromDataURI strips the scheme and encoding prefix, up to and
// including the first comma. It returns "" when there is no comma.
func PayloadFromDataURI(uri string) string {
	_, payload, found := strings.Cut(uri, ",")
	if !found {
		return ""
	}
	return payload
}

// SourceFromDataURI wraps a base64 data URI, such as one copied to the
// clipboard, as a Source
func SourceFromDataURI(channel Channel, name, uri string) (Source, error) {
	header, payload, found := strings.Cut(strings.TrimSpace(uri), ",")
	if !found || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return Source{}, fmt.Errorf("not a base64 data URI")
	}
	mediaType := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	return Source{
		Channel:   channel,
		Name:      name,
		MediaType: mediaType,
		Body:      base64.NewDecoder(base64.StdEncoding, strings.NewReader(payload)),
	}, nil
}
