// Copyright 2017 The CTags Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

// isIgnore reports whether the innermost conditional is currently
// suppressing output.
func (s *State) isIgnore() bool { return s.currentConditional().Ignoring }

// setIgnore sets the innermost conditional's suppression flag and
// returns it, the Go analogue of get.c's setIgnore.
func (s *State) setIgnore(ignore bool) bool {
	s.currentConditional().Ignoring = ignore
	return ignore
}

// isIgnoreBranch decides whether the branch now being entered (an
// #elif or #else) should be suppressed. A statement discovered
// mid-conditional forces singleBranch even if earlier branches were
// followed while complete, per spec section 4.5 / get.c's isIgnore.
func (s *State) isIgnoreBranch() bool {
	f := s.currentConditional()
	if s.resolveRequired && !s.braceFormat {
		f.SingleBranch = true
	}
	return f.IgnoreAllBranches || (f.BranchChosen && f.SingleBranch)
}

// chooseBranch marks the innermost conditional's branch as chosen,
// for an #else that is not itself ignored. A no-op in brace-format
// mode, matching get.c's chooseBranch exactly (see SPEC_FULL.md
// section 6 on the resolveRequired/braceFormat interaction).
func (s *State) chooseBranch() {
	if s.braceFormat {
		return
	}
	f := s.currentConditional()
	f.BranchChosen = f.SingleBranch || s.resolveRequired
}

// pushConditional opens one nesting level for an #if/#ifdef/#ifndef,
// given whether its first branch is taken. It reports whether the new
// level is suppressed; the push itself is silently dropped once
// nestLevel reaches the cap (spec section 7: "Conditional stack
// overflow... silently drop the frame").
func (s *State) pushConditional(firstBranchChosen bool) bool {
	ignoreAllBranches := s.isIgnore()

	if s.directive.nestLevel >= maxCppNestingLevel-1 {
		return false
	}

	s.directive.nestLevel++
	f := s.currentConditional()
	*f = ConditionalFrame{
		IgnoreAllBranches: ignoreAllBranches,
		SingleBranch:      s.resolveRequired,
		BranchChosen:      firstBranchChosen,
	}
	f.Ignoring = ignoreAllBranches ||
		(!firstBranchChosen && !s.braceFormat &&
			(f.SingleBranch || !s.opts.If0))
	return f.Ignoring
}

// popConditional closes the innermost nesting level for an #endif,
// clamped at 0 (spec section 3 invariant: pops below 0 are clamped),
// and reports the suppression state of the level that is now current.
func (s *State) popConditional() bool {
	if s.directive.nestLevel > 0 {
		s.directive.nestLevel--
	}
	return s.isIgnore()
}

// directiveIf interprets the first non-space byte following
// #if/#ifdef/#ifndef: the classic "#if 0" heuristic, never a real
// expression evaluation (spec section 1 non-goal).
func (s *State) directiveIf(c rune) bool {
	ignore := s.pushConditional(c != '0')
	s.directive.state = dsNone
	return ignore
}
