package email

// Email представляет структуру email сообщения
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// TemplateData представляет данные для шаблонов писем
type TemplateData map[string]interface{}
