package whatsapp

// Graph API request bodies for POST /{phone-number-id}/messages.

type sendRequest struct {
	MessagingProduct string           `json:"messaging_product"`
	RecipientType    string           `json:"recipient_type"`
	To               string           `json:"to"`
	Type             string           `json:"type"`
	Text             *textPart        `json:"text,omitempty"`
	Interactive      *interactivePart `json:"interactive,omitempty"`
	Image            *mediaPart       `json:"image,omitempty"`
	Document         *mediaPart       `json:"document,omitempty"`
	Video            *mediaPart       `json:"video,omitempty"`
	Audio            *mediaPart       `json:"audio,omitempty"`
}

type textPart struct {
	Body       string `json:"body"`
	PreviewURL bool   `json:"preview_url"`
}

type interactivePart struct {
	Type   string     `json:"type"`
	Body   bodyPart   `json:"body"`
	Action actionPart `json:"action"`
}

type bodyPart struct {
	Text string `json:"text"`
}

type actionPart struct {
	Buttons  []buttonPart  `json:"buttons,omitempty"`
	Button   string        `json:"button,omitempty"`
	Sections []sectionPart `json:"sections,omitempty"`
}

type buttonPart struct {
	Type  string    `json:"type"`
	Reply replyPart `json:"reply"`
}

type replyPart struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type sectionPart struct {
	Title string    `json:"title,omitempty"`
	Rows  []rowPart `json:"rows"`
}

type rowPart struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type mediaPart struct {
	Link     string `json:"link"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}
