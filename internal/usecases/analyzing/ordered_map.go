package analyzing

// orderedMap mantém a ordem de inserção das chaves. É ela que decide os empates
// nas reduções de máximo: vence a chave inserida primeiro.
type orderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{values: make(map[K]V)}
}

// getOrInsert retorna o valor da chave, inserindo newValue() se ela ainda não existe
func (m *orderedMap[K, V]) getOrInsert(key K, newValue func() V) V {
	if value, ok := m.values[key]; ok {
		return value
	}

	value := newValue()
	m.keys = append(m.keys, key)
	m.values[key] = value
	return value
}

// update aplica fn sobre o valor atual (ou newValue() para chaves novas)
func (m *orderedMap[K, V]) update(key K, newValue func() V, fn func(V) V) {
	m.values[key] = fn(m.getOrInsert(key, newValue))
}

// get retorna o valor zero para chaves ausentes
func (m *orderedMap[K, V]) get(key K) V {
	return m.values[key]
}

func (m *orderedMap[K, V]) len() int {
	return len(m.keys)
}

func (m *orderedMap[K, V]) each(fn func(key K, value V)) {
	for _, key := range m.keys {
		fn(key, m.values[key])
	}
}

// maxBy devolve o maior par segundo greater. Só troca de candidato quando o novo
// valor é estritamente maior, então em empate fica a chave mais antiga.
func maxBy[K comparable, V any](m *orderedMap[K, V], greater func(a, b V) bool) (K, V, bool) {
	var (
		bestKey   K
		bestValue V
		found     bool
	)

	m.each(func(key K, value V) {
		if !found || greater(value, bestValue) {
			bestKey, bestValue, found = key, value, true
		}
	})

	return bestKey, bestValue, found
}

func zero[V any]() V {
	var v V
	return v
}

func increment(delta int) func(int) int {
	return func(v int) int { return v + delta }
}
