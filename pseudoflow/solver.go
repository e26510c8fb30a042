package pseudoflow

// solver holds the per-Solve working state of the engine: the sub-instance's
// node arena and arc list (possibly a reversed copy), the strong-root
// buckets, and the label census. Nothing here survives the Solve call, and
// there is no package-level state at all.
type solver struct {
	nodes    []node
	arcs     []arc
	numNodes int
	source   int
	sink     int

	highestStrongLabel int
	strongRoots        []bucket
	labelCount         []int

	stats *Stats
}

// buildStructures sizes the out-of-tree lists, distributes arcs to them, and
// allocates buckets and label counts. Arcs that can never carry useful
// residual state are skipped: arcs into the source, out of the sink, and
// self loops. A direct source-to-sink arc is simply saturated; it crosses
// every cut and never joins a tree.
//
// Source-adjacent arcs live on the source's list and sink-adjacent arcs on
// the sink's, so initialization can saturate both sides in one sweep.
// Interior arcs live on their tail node's list.
func (s *solver) buildStructures() {
	for i := range s.nodes {
		s.nodes[i].createOutOfTree()
	}

	for i := range s.arcs {
		a := &s.arcs[i]
		from := a.from.number
		to := a.to.number

		if s.source == to || s.sink == from || from == to {
			continue
		}
		switch {
		case s.source == from && to == s.sink:
			a.flow = a.capacity
		case to == s.sink:
			s.nodes[to].addOutOfTree(a)
		default:
			s.nodes[from].addOutOfTree(a)
		}
	}

	// One extra slot: the source carries label n, and a relabel at the top
	// of the range must stay in bounds.
	s.strongRoots = make([]bucket, s.numNodes+1)
	s.labelCount = make([]int, s.numNodes+1)
}

// simpleInitialization saturates every source- and sink-adjacent arc,
// leaving the resulting excesses and deficits on the interior endpoints.
// Every node holding strict excess becomes a strong root at label 1.
func (s *solver) simpleInitialization() {
	src := &s.nodes[s.source]
	for i := 0; i < src.numOutOfTree; i++ {
		a := src.outOfTree[i]
		a.flow = a.capacity
		a.to.excess += a.capacity
	}

	snk := &s.nodes[s.sink]
	for i := 0; i < snk.numOutOfTree; i++ {
		a := snk.outOfTree[i]
		a.flow = a.capacity
		a.from.excess -= a.capacity
	}

	src.excess = 0
	snk.excess = 0

	for i := range s.nodes {
		if excessSign(s.nodes[i].excess) > 0 {
			s.nodes[i].label = 1
			s.labelCount[1]++
			s.strongRoots[1].push(&s.nodes[i])
		}
	}

	src.label = s.numNodes
	snk.label = 0
	s.labelCount[0] = (s.numNodes - 2) - s.labelCount[1]
}

// liftAll assigns label n to every node in the tree rooted at rootNode,
// removing the tree from circulation after a gap.
func (s *solver) liftAll(rootNode *node) {
	current := rootNode
	current.nextScan = current.childList

	s.labelCount[current.label]--
	current.label = s.numNodes

	for ; current != nil; current = current.parent {
		for current.nextScan != nil {
			temp := current.nextScan
			current.nextScan = current.nextScan.next
			current = temp
			current.nextScan = current.childList

			s.labelCount[current.label]--
			current.label = s.numNodes
		}
	}
}

// getHighestStrongRoot scans buckets from the highest known strong label
// downward. A non-empty bucket at label l with labelCount[l-1] == 0 exposes
// a gap: every root waiting at l is lifted to n. If only label-0 roots
// remain they are promoted to label 1 and served from there.
func (s *solver) getHighestStrongRoot() *node {
	for i := min(s.highestStrongLabel, s.numNodes); i > 0; i-- {
		if s.strongRoots[i].start == nil {
			continue
		}
		s.highestStrongLabel = i
		if s.labelCount[i-1] > 0 {
			return s.strongRoots[i].pop()
		}

		for s.strongRoots[i].start != nil {
			s.stats.Gaps++
			s.liftAll(s.strongRoots[i].pop())
		}
	}

	if s.strongRoots[0].start == nil {
		return nil
	}

	for s.strongRoots[0].start != nil {
		strongRoot := s.strongRoots[0].pop()
		strongRoot.label = 1
		s.labelCount[0]--
		s.labelCount[1]++
		s.stats.Relabels++
		s.strongRoots[1].push(strongRoot)
	}

	s.highestStrongLabel = 1
	return s.strongRoots[1].pop()
}

// findWeakNode scans strongNode's remaining out-of-tree arcs for an endpoint
// exactly one label below the current strong level. A hit removes the arc
// from the list (swap with the last active entry) and reports the weak
// endpoint; the cursor survives across calls so each arc is scanned once per
// label.
func (s *solver) findWeakNode(strongNode *node, weakNode **node) *arc {
	size := strongNode.numOutOfTree

	for i := strongNode.nextArc; i < size; i++ {
		s.stats.ArcScans++
		out := strongNode.outOfTree[i]
		switch {
		case out.to.label == s.highestStrongLabel-1:
			strongNode.nextArc = i
			*weakNode = out.to
		case out.from.label == s.highestStrongLabel-1:
			strongNode.nextArc = i
			*weakNode = out.from
		default:
			continue
		}
		strongNode.numOutOfTree--
		strongNode.outOfTree[i] = strongNode.outOfTree[strongNode.numOutOfTree]
		return out
	}

	strongNode.nextArc = strongNode.numOutOfTree
	return nil
}

// checkChildren relabels curNode once its resumable child scan shows no
// child sharing its label, and resets its arc cursor for the new level.
func (s *solver) checkChildren(curNode *node) {
	for ; curNode.nextScan != nil; curNode.nextScan = curNode.nextScan.next {
		if curNode.nextScan.label == curNode.label {
			return
		}
	}

	s.labelCount[curNode.label]--
	curNode.label++
	s.labelCount[curNode.label]++
	s.stats.Relabels++

	curNode.nextArc = 0
}

// merge rotates child's ancestral chain so that the path from child to its
// old root becomes a path from child up through its new parent. Each step
// flips the reversed arc's direction bit; the old root ends up hanging off
// the chain.
func (s *solver) merge(parent, child *node, newArc *arc) {
	s.stats.Mergers++

	current := child
	newParent := parent
	for current.parent != nil {
		oldArc := current.arcToParent
		current.arcToParent = newArc
		oldParent := current.parent
		breakRelationship(oldParent, current)
		addRelationship(newParent, current)
		newParent = current
		current = oldParent
		newArc = oldArc
		newArc.direction = 1 - newArc.direction
	}

	current.arcToParent = newArc
	addRelationship(newParent, current)
}

// pushUpward sends child's excess along its parent arc in the arc's native
// direction. Saturating the arc breaks the tree edge: the arc returns to the
// parent's out-of-tree list and the child becomes a strong root again.
func (s *solver) pushUpward(currentArc *arc, child, parent *node, resCap float64) {
	s.stats.Pushes++

	if excessSign(resCap-child.excess) >= 0 {
		parent.excess += child.excess
		currentArc.flow += child.excess
		child.excess = 0
		return
	}

	currentArc.direction = 0
	parent.excess += resCap
	child.excess -= resCap
	currentArc.flow = currentArc.capacity
	parent.addOutOfTree(currentArc)
	breakRelationship(parent, child)

	s.strongRoots[child.label].push(child)
}

// pushDownward sends child's excess against the arc's native direction by
// canceling flow. Draining the arc to zero breaks the tree edge.
func (s *solver) pushDownward(currentArc *arc, child, parent *node, flow float64) {
	s.stats.Pushes++

	if excessSign(flow-child.excess) >= 0 {
		parent.excess += child.excess
		currentArc.flow -= child.excess
		child.excess = 0
		return
	}

	currentArc.direction = 1
	child.excess -= flow
	parent.excess += flow
	currentArc.flow = 0
	parent.addOutOfTree(currentArc)
	breakRelationship(parent, child)

	s.strongRoots[child.label].push(child)
}

// pushExcess walks from strongRoot toward its root, forwarding excess across
// each tree arc until the excess is gone or an arc saturates. If the walk
// leaves strict excess on a node whose previous balance was not positive,
// that node is a fresh strong root and is enqueued.
func (s *solver) pushExcess(strongRoot *node) {
	var parent *node
	prevEx := 1.0

	current := strongRoot
	for ; excessSign(current.excess) != 0 && current.parent != nil; current = parent {
		parent = current.parent
		prevEx = parent.excess

		arcToParent := current.arcToParent
		if arcToParent.direction != 0 {
			s.pushUpward(arcToParent, current, parent, arcToParent.capacity-arcToParent.flow)
		} else {
			s.pushDownward(arcToParent, current, parent, arcToParent.flow)
		}
	}

	if excessSign(current.excess) > 0 && excessSign(prevEx) <= 0 {
		s.strongRoots[current.label].push(current)
	}
}

// processRoot tries to merge the strong tree rooted at strongRoot into a
// weak neighbor one label below, scanning the root first and then the whole
// sub-tree via the resumable nextScan cursors, relabeling as the scan proves
// levels exhausted. If the entire tree fails to find a weak neighbor the
// root is requeued one strong level up.
func (s *solver) processRoot(strongRoot *node) {
	var weakNode *node
	strongNode := strongRoot

	strongRoot.nextScan = strongRoot.childList
	if out := s.findWeakNode(strongRoot, &weakNode); out != nil {
		s.merge(weakNode, strongNode, out)
		s.pushExcess(strongRoot)
		return
	}

	s.checkChildren(strongRoot)

	for strongNode != nil {
		for strongNode.nextScan != nil {
			temp := strongNode.nextScan
			strongNode.nextScan = strongNode.nextScan.next
			strongNode = temp
			strongNode.nextScan = strongNode.childList

			if out := s.findWeakNode(strongNode, &weakNode); out != nil {
				s.merge(weakNode, strongNode, out)
				s.pushExcess(strongRoot)
				return
			}

			s.checkChildren(strongNode)
		}

		if strongNode = strongNode.parent; strongNode != nil {
			s.checkChildren(strongNode)
		}
	}

	s.strongRoots[strongRoot.label].push(strongRoot)
	s.highestStrongLabel++
}

// phase1 runs the main loop to exhaustion. On return the nodes labeled
// >= numNodes form the source side of a minimum cut.
func (s *solver) phase1() {
	for strongRoot := s.getHighestStrongRoot(); strongRoot != nil; strongRoot = s.getHighestStrongRoot() {
		s.processRoot(strongRoot)
	}
}
