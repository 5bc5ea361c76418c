package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/efparfum/perfumaria-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// respondJSON serializa o corpo da resposta; falha de serialização vira 500.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao serializar resposta")
	}
}
