package domain

import "errors"

// ErrCycle редактирование создаёт цикл в графе услуг
var ErrCycle = errors.New("domain: service graph cycle")

// ServiceGraph граф "услуга -> родительские услуги"
type ServiceGraph struct {
	parents map[int64][]int64
}

// NewServiceGraph строит граф из списка рёбер child -> parents
func NewServiceGraph(edges map[int64][]int64) *ServiceGraph {
	g := &ServiceGraph{parents: make(map[int64][]int64, len(edges))}
	for child, ps := range edges {
		g.parents[child] = append([]int64(nil), ps...)
	}
	return g
}

// Parents родители услуги
func (g *ServiceGraph) Parents(id int64) []int64 {
	return g.parents[id]
}

// SetParents заменяет родителей услуги, если это не создаёт цикл
func (g *ServiceGraph) SetParents(child int64, parents []int64) error {
	if g.WouldCycle(child, parents) {
		return ErrCycle
	}
	g.parents[child] = UniqueIDs(parents)
	return nil
}

// WouldCycle проверяет, станет ли child своим предком, если назначить ему parents.
// Итеративный обход в глубину по родителям (visited + стек)
func (g *ServiceGraph) WouldCycle(child int64, parents []int64) bool {
	visited := make(map[int64]struct{})
	stack := append([]int64(nil), parents...)

	for len(stack) > 0 {
		n := len(stack) - 1
		current := stack[n]
		stack = stack[:n]

		if current == child {
			return true
		}
		if _, ok := visited[current]; ok {
			continue
		}
		visited[current] = struct{}{}
		stack = append(stack, g.parents[current]...)
	}
	return false
}
