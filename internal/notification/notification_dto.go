package notification

type MarkReadRequest struct {
	IDs []string `json:"ids"`
	All bool     `json:"all"`
}

type NotificationResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Type      string         `json:"type"`
	Extra     map[string]any `json:"extra,omitempty"`
	IsRead    bool           `json:"is_read"`
	CreatedAt string         `json:"created_at"`
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}
