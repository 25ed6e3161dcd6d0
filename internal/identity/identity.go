package identity

// Identity descreve quem está operando o carrinho nesta requisição:
// um usuário autenticado (JWT) ou um visitante (token de guest).
type Identity struct {
	Authenticated bool

	// Preenchidos quando autenticado.
	UserID   uint
	UserUUID string
	Mobile   string
	Email    string

	// Preenchido quando visitante.
	GuestID string
}

func Guest(guestID string) Identity {
	return Identity{GuestID: guestID}
}
