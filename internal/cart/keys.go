package cart

import "github.com/BruksfildServices01/spa-booking/internal/identity"

// KeyFor resolve a chave de storage do carrinho para uma identidade.
//
// Usuário autenticado: mobile, senão email, senão uuid — nessa ordem.
// Visitante: token de guest gerado no cliente.
// Função pura para poder ser testada sem storage nem HTTP.
func KeyFor(id identity.Identity) string {
	if id.Authenticated {
		switch {
		case id.Mobile != "":
			return "cart:user:" + id.Mobile
		case id.Email != "":
			return "cart:user:" + id.Email
		default:
			return "cart:user:" + id.UserUUID
		}
	}
	return "cart:guest:" + id.GuestID
}
