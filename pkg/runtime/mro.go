package runtime

import "errors"

// errInconsistentHierarchy is reported when C3 merge cannot produce a
// linearization for the class's bases.
var errInconsistentHierarchy = errors.New("inconsistent hierarchy, no valid method resolution order")

// linearize computes the C3 linearization of a class:
// L(C) = C + merge(L(B1), ..., L(Bn), [B1, ..., Bn]).
func linearize(c *Class) ([]*Class, error) {
	if len(c.bases) == 0 {
		return []*Class{c}, nil
	}
	seqs := make([][]*Class, 0, len(c.bases)+1)
	for _, b := range c.bases {
		mro := b.Mro()
		seq := make([]*Class, len(mro))
		copy(seq, mro)
		seqs = append(seqs, seq)
	}
	bases := make([]*Class, len(c.bases))
	copy(bases, c.bases)
	seqs = append(seqs, bases)

	merged, err := merge(seqs)
	if err != nil {
		return nil, err
	}
	return append([]*Class{c}, merged...), nil
}

// merge repeatedly takes the head of the first sequence whose head does
// not appear in the tail of any other sequence.
func merge(seqs [][]*Class) ([]*Class, error) {
	var out []*Class
	for {
		seqs = dropEmpty(seqs)
		if len(seqs) == 0 {
			return out, nil
		}
		head := pickHead(seqs)
		if head == nil {
			return nil, errInconsistentHierarchy
		}
		out = append(out, head)
		for i, seq := range seqs {
			if len(seq) > 0 && seq[0] == head {
				seqs[i] = seq[1:]
			}
		}
	}
}

func pickHead(seqs [][]*Class) *Class {
	for _, seq := range seqs {
		head := seq[0]
		if !inAnyTail(head, seqs) {
			return head
		}
	}
	return nil
}

func inAnyTail(c *Class, seqs [][]*Class) bool {
	for _, seq := range seqs {
		for _, other := range seq[1:] {
			if other == c {
				return true
			}
		}
	}
	return false
}

func dropEmpty(seqs [][]*Class) [][]*Class {
	out := seqs[:0]
	for _, seq := range seqs {
		if len(seq) > 0 {
			out = append(out, seq)
		}
	}
	return out
}
