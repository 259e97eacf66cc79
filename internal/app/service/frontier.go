package service

// frontier: BFS por niveles sobre strings de búsqueda.
// Una query que entra en searched nunca vuelve a salir.
type frontier struct {
	searched map[string]struct{}
	pending  []string
}

func newFrontier(seeds []string) *frontier {
	f := &frontier{searched: make(map[string]struct{}, len(seeds))}
	f.pending = append(f.pending, seeds...)
	return f
}

// next devuelve el próximo nivel sin repetidos y lo marca como buscado.
func (f *frontier) next() []string {
	batch := make([]string, 0, len(f.pending))
	for _, q := range f.pending {
		if _, ok := f.searched[q]; ok {
			continue
		}
		f.searched[q] = struct{}{}
		batch = append(batch, q)
	}
	f.pending = f.pending[:0]
	return batch
}

// push ignora lo ya buscado; los repetidos dentro de pending los filtra next.
func (f *frontier) push(q string) {
	if f.seen(q) {
		return
	}
	f.pending = append(f.pending, q)
}

func (f *frontier) seen(q string) bool {
	_, ok := f.searched[q]
	return ok
}
