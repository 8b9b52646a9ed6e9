package tui

import "github.com/charmbracelet/bubbles/key"

const (
	brandName      = "ShortURL's"
	versionBadge   = "v1.0"
	onlineBadge    = "ONLINE SYSTEM"
	heroHeadline   = "Links encurtados."
	heroSubline    = "Sem complicações."
	heroTagline    = "Infraestrutura moderna e design limpo."
	inputPrompt    = "› "
	inputHint      = "Cole seu link longo aqui..."
	submitLabel    = "Encurtar"
	copyLabel      = "Copiar"
	copiedLabel    = "Copiado"
	resultHeading  = "RESULTADO"
	resultActive   = "Ativo"
	originalLabel  = "Original"
	inputCharLimit = 2048
)

type feature struct {
	Title string
	Desc  string
}

var footerFeatures = []feature{
	{"Rápido", "Resposta em ms"},
	{"Analytics", "Dados em tempo real"},
	{"Global", "Acesso mundial"},
}

type keyMap struct {
	Submit key.Binding
	Copy   key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", submitLabel)),
		Copy:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", copyLabel)),
		Reset:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "limpar")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "sair")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Copy, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
