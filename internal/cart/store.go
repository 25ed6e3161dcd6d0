package cart

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/spa-booking/internal/identity"
	"github.com/BruksfildServices01/spa-booking/internal/models"
)

// Store é a única fonte de verdade da seleção em andamento.
// Mutações são síncronas; a escrita no storage é efeito colateral e
// nunca bloqueia o uso do carrinho — erro de storage vai para Err.
type Store struct {
	storage Storage
	key     string
	items   []models.CartItem

	// Último erro de leitura/escrita do storage. Não-fatal: o estado
	// em memória continua autoritativo para a sessão.
	Err error
}

// Open carrega o carrinho persistido da identidade (initialize).
// Carrinho ausente ou corrompido vira carrinho vazio.
func Open(ctx context.Context, storage Storage, id identity.Identity) *Store {
	s := &Store{
		storage: storage,
		key:     KeyFor(id),
		items:   []models.CartItem{},
	}
	s.load(ctx, s.key)
	return s
}

func (s *Store) load(ctx context.Context, key string) {
	raw, err := s.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.Err = err
			zap.L().Warn("cart storage read failed", zap.String("key", key), zap.Error(err))
		}
		return
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.Err = err
		zap.L().Warn("cart payload corrupted, starting empty", zap.String("key", key))
		return
	}
	s.items = items
}

func (s *Store) Key() string {
	return s.key
}

// Items retorna uma cópia: mutações passam só pela API do Store.
func (s *Store) Items() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	return len(s.items)
}

// Add acrescenta ao fim da sequência. Sem deduplicação: o mesmo
// serviço adicionado duas vezes gera duas entradas.
func (s *Store) Add(ctx context.Context, item models.CartItem) {
	s.items = append(s.items, item)
	s.persist(ctx)
}

// RemoveAt remove por posição; índice fora do intervalo é ignorado.
func (s *Store) RemoveAt(ctx context.Context, index int) {
	if index < 0 || index >= len(s.items) {
		return
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	s.persist(ctx)
}

// ReplaceAll troca o conteúdo inteiro (recomputação do contexto de
// agendamento de todos os itens).
func (s *Store) ReplaceAll(ctx context.Context, items []models.CartItem) {
	s.items = make([]models.CartItem, len(items))
	copy(s.items, items)
	s.persist(ctx)
}

// Clear esvazia o carrinho e remove a cópia persistida.
func (s *Store) Clear(ctx context.Context) {
	s.items = []models.CartItem{}
	if err := s.storage.Remove(ctx, s.key); err != nil {
		s.Err = err
		zap.L().Warn("cart storage remove failed", zap.String("key", s.key), zap.Error(err))
	}
}

// ClearBookingContext remove operador/data/horário de todos os itens,
// preservando o resto. Chamado quando operador ou data são trocados,
// para atribuições antigas não vazarem num novo agendamento.
func (s *Store) ClearBookingContext(ctx context.Context) {
	for i := range s.items {
		s.items[i].Operator = ""
		s.items[i].SelectedDate = ""
		s.items[i].SelectedDay = ""
		s.items[i].TimeSlot = ""
	}
	s.persist(ctx)
}

// MergeGuestIntoUser concatena o carrinho de guest ao carrinho do
// usuário (itens do guest depois dos existentes) e apaga a cópia do
// guest. Guest vazio: no-op, o carrinho do usuário já foi carregado.
func (s *Store) MergeGuestIntoUser(ctx context.Context, guestID string) {
	guestKey := KeyFor(identity.Guest(guestID))

	raw, err := s.storage.Get(ctx, guestKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.Err = err
			zap.L().Warn("guest cart read failed on merge", zap.Error(err))
		}
		return
	}

	var guestItems []models.CartItem
	if err := json.Unmarshal([]byte(raw), &guestItems); err != nil {
		s.Err = err
		return
	}

	if len(guestItems) > 0 {
		s.items = append(s.items, guestItems...)
		s.persist(ctx)
	}

	if err := s.storage.Remove(ctx, guestKey); err != nil {
		s.Err = err
		zap.L().Warn("guest cart remove failed on merge", zap.Error(err))
	}
}

// persist grava o estado atual sob a chave da identidade.
func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.items)
	if err != nil {
		s.Err = err
		return
	}

	if err := s.storage.Set(ctx, s.key, string(raw)); err != nil {
		s.Err = err
		zap.L().Warn("cart storage write failed", zap.String("key", s.key), zap.Error(err))
	}
}
