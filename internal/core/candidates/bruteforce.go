package candidates

import (
	"context"
	"fmt"
	"math"

	"subburst/internal/core/domain"
)

// MaxLabelLength es el máximo de una etiqueta DNS (RFC 1035).
const MaxLabelLength = 63

// BruteForce enumera todas las etiquetas de longitud Min..Max sobre CharacterPool,
// en orden lexicográfico por posición, sin etiquetas que empiecen por guion.
//
// La generación es perezosa: un odómetro por longitud, nunca el producto completo en memoria.
type BruteForce struct {
	Min int
	Max int
}

// NewBruteForce valida el rango [min, max].
func NewBruteForce(min, max int) (*BruteForce, error) {
	if min < 1 || max < min || max > MaxLabelLength {
		return nil, fmt.Errorf("%w: %d-%d", domain.ErrInvalidLength, min, max)
	}
	return &BruteForce{Min: min, Max: max}, nil
}

// Mode implementa Strategy.
func (b *BruteForce) Mode() domain.GenerationMode {
	return domain.GenerationBruteForce
}

// Describe implementa Strategy.
func (b *BruteForce) Describe() string {
	if b.Min == b.Max {
		return fmt.Sprintf("bruteforce length=%d", b.Min)
	}
	return fmt.Sprintf("bruteforce length=%d-%d", b.Min, b.Max)
}

// Count retorna Σ (P-1)·P^(k-1) para k en [Min, Max]; satura en MaxUint64.
func (b *BruteForce) Count() uint64 {
	p := uint64(len(CharacterPool))
	var total uint64
	for k := b.Min; k <= b.Max; k++ {
		n := p - 1
		for i := 1; i < k; i++ {
			if n > math.MaxUint64/p {
				return math.MaxUint64
			}
			n *= p
		}
		if total > math.MaxUint64-n {
			return math.MaxUint64
		}
		total += n
	}
	return total
}

// Generate implementa Strategy. Se detiene en el primer error de emit o al cancelar ctx.
func (b *BruteForce) Generate(ctx context.Context, emit Emit) error {
	for k := b.Min; k <= b.Max; k++ {
		if err := b.generateLength(ctx, k, emit); err != nil {
			return err
		}
	}
	return nil
}

func (b *BruteForce) generateLength(ctx context.Context, k int, emit Emit) error {
	pool := CharacterPool
	hyphen := len(pool) - 1
	idx := make([]int, k)
	label := make([]byte, k)

	// el guion es el último símbolo: cuando la primera posición llega a él, el resto son inválidas
	for idx[0] != hyphen {
		if err := ctx.Err(); err != nil {
			return err
		}

		for i, v := range idx {
			label[i] = pool[v]
		}
		if err := emit(string(label)); err != nil {
			return err
		}

		// odómetro: incrementar desde la última posición
		for pos := k - 1; pos >= 0; pos-- {
			idx[pos]++
			if idx[pos] < len(pool) || pos == 0 {
				break
			}
			idx[pos] = 0
		}
	}
	return nil
}
