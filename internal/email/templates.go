package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// TemplateManager реализует TemplateRenderer для управления шаблонами email
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager создает менеджер с предзагруженными шаблонами писем
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	// Шаблоны ревью заявок. Ошибка парсинга здесь невозможна,
	// но AddTemplate оставлен единственной точкой регистрации.
	for name, tpl := range defaultTemplates {
		if err := tm.AddTemplate(name, tpl); err != nil {
			panic(fmt.Sprintf("failed to parse builtin email template %s: %v", name, err))
		}
	}

	return tm
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate добавляет шаблон в менеджер
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

var defaultTemplates = map[string]string{
	"application_approved": `
<h2>Добро пожаловать в FitHub, {{.FirstName}}!</h2>
<p>Ваша заявка тренера одобрена. Теперь вы можете войти со своим email и паролем,
который указали при подаче заявки.</p>
{{if .AdminNotes}}<p>Комментарий администратора: {{.AdminNotes}}</p>{{end}}
`,
	"application_rejected": `
<h2>Здравствуйте, {{.FirstName}}.</h2>
<p>К сожалению, ваша заявка тренера отклонена.</p>
<p>Причина: {{.Reason}}</p>
<p>Вы можете подать новую заявку, устранив замечания.</p>
`,
}
