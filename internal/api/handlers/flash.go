package handlers

import (
	"net/http"
	"strings"
)

// Flash is a one-shot status banner carried across the post-redirect-get
// cycle as a query parameter key.
type Flash struct {
	Kind string // "ok" or "error"
	Text string
}

var okText = map[string]string{
	"agendado": "Agendamento realizado com sucesso.",
}

var errText = map[string]string{
	"email_invalido":    "E-mail inválido.",
	"telefone_invalido": "Telefone inválido.",
	"data_invalida":     "Data inválida.",
	"dia_fechado":       "A Fundação não abre para visitas nesse dia.",
	"dia_sem_pesquisa":  "O arquivo não recebe pesquisadores nos fins de semana.",
	"turno_invalido":    "Turno inválido: escolha manhã ou tarde.",
	"erro_banco":        "Não foi possível salvar o agendamento. Tente novamente.",
	"categoria":         "Categoria de visita desconhecida.",
}

// MakeFlash reads the ?ok= / ?error= query keys and resolves them to the
// Portuguese banner texts. Unknown keys fall back to a generic message
// instead of echoing the raw query value.
func MakeFlash(r *http.Request) *Flash {
	q := r.URL.Query()

	if key := strings.TrimSpace(q.Get("error")); key != "" {
		if t, ok := errText[strings.ToLower(key)]; ok {
			return &Flash{Kind: "error", Text: t}
		}
		return &Flash{Kind: "error", Text: "Não foi possível processar a solicitação."}
	}
	if key := strings.TrimSpace(q.Get("ok")); key != "" {
		if t, ok := okText[strings.ToLower(key)]; ok {
			return &Flash{Kind: "ok", Text: t}
		}
		return &Flash{Kind: "ok", Text: "Operação concluída."}
	}
	return nil
}
