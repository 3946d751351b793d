package outbound

import "strings"

// Provider limits for interactive messages.
const (
	MaxButtons        = 3
	MaxButtonTitle    = 20
	MaxListRows       = 10
	MaxRowTitle       = 24
	MaxRowDescription = 72
)

type Button struct {
	ID    string
	Title string
}

type Row struct {
	ID          string
	Title       string
	Description string
}

type Section struct {
	Title string
	Rows  []Row
}

type List struct {
	Body        string
	ButtonLabel string
	Sections    []Section
}

func (l List) RowCount() int {
	n := 0
	for _, s := range l.Sections {
		n += len(s.Rows)
	}
	return n
}

type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaDocument MediaKind = "document"
	MediaVideo    MediaKind = "video"
	MediaAudio    MediaKind = "audio"
)

type Media struct {
	Kind     MediaKind
	URL      string
	Caption  string
	Filename string
}

// MediaKindFor maps a MIME type to the message kind used to send it.
// Anything unrecognized goes out as a document.
func MediaKindFor(mime string) MediaKind {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return MediaImage
	case strings.HasPrefix(mime, "video/"):
		return MediaVideo
	case strings.HasPrefix(mime, "audio/"):
		return MediaAudio
	default:
		return MediaDocument
	}
}

// Clip cuts s to at most n runes.
func Clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
