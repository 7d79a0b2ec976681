package automaton

// minimizePartition runs Hopcroft-style partition refinement over a
// deterministic automaton d, generalizing regexlib/minimize.go's
// Minimize (which refines over the single-rune alphabet) to d's
// elementary-interval alphabet. States that are indistinguishable under
// every interval end up merged into one representative state.
func minimizePartition(d *Automaton) *Automaton {
	states := d.States()
	boundary := boundaryOf(d)
	reps := make([]rune, 0, len(boundary))
	for i := 0; i+1 < len(boundary); i++ {
		reps = append(reps, boundary[i])
	}

	acc, non := map[*State]bool{}, map[*State]bool{}
	for _, s := range states {
		if s.accept {
			acc[s] = true
		} else {
			non[s] = true
		}
	}
	var partitions []map[*State]bool
	if len(acc) > 0 {
		partitions = append(partitions, acc)
	}
	if len(non) > 0 {
		partitions = append(partitions, non)
	}
	work := make([]int, len(partitions))
	for i := range partitions {
		work[i] = i
	}

	for len(work) > 0 {
		idx := work[0]
		work = work[1:]
		if idx >= len(partitions) {
			continue
		}
		A := partitions[idx]
		for _, pt := range reps {
			X := map[*State]bool{}
			for _, s := range states {
				if t := transAt(s, pt, pt); t != nil && A[t] {
					X[s] = true
				}
			}
			if len(X) == 0 {
				continue
			}
			for pIdx := 0; pIdx < len(partitions); pIdx++ {
				Y := partitions[pIdx]
				inter, diff := map[*State]bool{}, map[*State]bool{}
				for s := range Y {
					if X[s] {
						inter[s] = true
					} else {
						diff[s] = true
					}
				}
				if len(inter) == 0 || len(diff) == 0 {
					continue
				}
				partitions[pIdx] = inter
				partitions = append(partitions, diff)
				work = append(work, pIdx, len(partitions)-1)
			}
		}
	}

	representative := map[*State]*State{}
	firstOf := map[*State]*State{}
	for _, P := range partitions {
		var first *State
		for s := range P {
			first = s
			break
		}
		ns := &State{id: first.id, accept: first.accept}
		for s := range P {
			representative[s] = ns
		}
		firstOf[ns] = first
	}
	for repState, first := range firstOf {
		for _, e := range first.trans {
			repState.trans = append(repState.trans, edge{lo: e.lo, hi: e.hi, to: representative[e.to]})
		}
		repState.trans = mergeAdjacent(repState.trans)
	}
	return &Automaton{start: representative[d.start]}
}

// pruneDead removes every state that cannot reach an accepting state
// (and every edge leading to one), matching spec.md's automaton-library
// contract that a minimized automaton carries no dead states. A wholly
// dead automaton collapses to the canonical MakeEmpty().
func pruneDead(a *Automaton) *Automaton {
	states := a.States()
	rev := map[*State][]*State{}
	for _, s := range states {
		for _, e := range s.trans {
			rev[e.to] = append(rev[e.to], s)
		}
	}
	alive := map[*State]bool{}
	var queue []*State
	for _, s := range states {
		if s.accept {
			alive[s] = true
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, p := range rev[s] {
			if !alive[p] {
				alive[p] = true
				queue = append(queue, p)
			}
		}
	}
	if !alive[a.start] {
		return MakeEmpty()
	}
	copied := map[*State]*State{}
	for _, s := range states {
		if alive[s] {
			copied[s] = &State{id: s.id, accept: s.accept}
		}
	}
	for _, s := range states {
		if !alive[s] {
			continue
		}
		ns := copied[s]
		for _, e := range s.trans {
			if alive[e.to] {
				ns.trans = append(ns.trans, edge{lo: e.lo, hi: e.hi, to: copied[e.to]})
			}
		}
	}
	return &Automaton{start: copied[a.start]}
}

// Minimize determinizes, partition-refines and dead-state-prunes a,
// producing the unique minimal DFA for a's language. When the global
// mutation flag (SetAllowMutate) is set, the freshly-built result is
// returned as-is; otherwise it is defensively cloned first.
func Minimize(a *Automaton) *Automaton {
	d := determinize(a)
	d = minimizePartition(d)
	d = pruneDead(d)
	if !AllowMutate() {
		d = Clone(d)
	}
	return d
}
