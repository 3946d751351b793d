package inbound

// Webhook body shapes of the WhatsApp Cloud API. Only the fields the engine
// reads are mapped; everything else is ignored by the decoder.

type webhookPayload struct {
	Object string         `json:"object"`
	Entry  []webhookEntry `json:"entry"`
}

type webhookEntry struct {
	ID      string          `json:"id"`
	Changes []webhookChange `json:"changes"`
}

type webhookChange struct {
	Field string       `json:"field"`
	Value webhookValue `json:"value"`
}

type webhookValue struct {
	MessagingProduct string         `json:"messaging_product"`
	Metadata         metadata       `json:"metadata"`
	Contacts         []contact      `json:"contacts"`
	Messages         []providerMsg  `json:"messages"`
	Statuses         []statusUpdate `json:"statuses"`
}

type metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type contact struct {
	WaID    string `json:"wa_id"`
	Profile struct {
		Name string `json:"name"`
	} `json:"profile"`
}

type statusUpdate struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type providerMsg struct {
	From        string       `json:"from"`
	ID          string       `json:"id"`
	Timestamp   string       `json:"timestamp"`
	Type        string       `json:"type"`
	Text        *textBody    `json:"text,omitempty"`
	Interactive *interactive `json:"interactive,omitempty"`
	Button      *quickReply  `json:"button,omitempty"`
	Image       *media       `json:"image,omitempty"`
	Document    *media       `json:"document,omitempty"`
	Audio       *media       `json:"audio,omitempty"`
	Video       *media       `json:"video,omitempty"`
	Sticker     *media       `json:"sticker,omitempty"`
}

type textBody struct {
	Body string `json:"body"`
}

type interactive struct {
	Type        string       `json:"type"`
	ButtonReply *buttonReply `json:"button_reply,omitempty"`
	ListReply   *listReply   `json:"list_reply,omitempty"`
}

type buttonReply struct {
	ID      string `json:"id"`
	Payload string `json:"payload"`
	Title   string `json:"title"`
}

type listReply struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type quickReply struct {
	Payload string `json:"payload"`
	Text    string `json:"text"`
}

type media struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type"`
	Sha256   string `json:"sha256"`
	Caption  string `json:"caption"`
	Filename string `json:"filename"`
}
