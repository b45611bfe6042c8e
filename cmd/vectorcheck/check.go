package main

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/simplevector"
)

const scenarioSize = 5

// scenario is one self-contained behavioural check.
type scenario struct {
	name string
	fn   func() error
}

var scenarios = []scenario{
	{"temporary_constructor", checkTemporaryConstructor},
	{"temporary_assignment", checkTemporaryAssignment},
	{"named_move_constructor", checkNamedMoveConstructor},
	{"named_move_assignment", checkNamedMoveAssignment},
	{"unique_move_constructor", checkUniqueMoveConstructor},
	{"unique_push_back", checkUniquePushBack},
	{"unique_insert", checkUniqueInsert},
	{"unique_erase", checkUniqueErase},
	{"reserve_constructor", checkReserveConstructor},
	{"resize", checkResize},
	{"checked_access", checkCheckedAccess},
	{"equality", checkEquality},
}

type checkCommand struct {
	logger log.Logger
}

func (cmd *checkCommand) run() error {
	failed := runScenarios(cmd.logger, scenarios)
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(scenarios))
	}
	level.Info(cmd.logger).Log("msg", "all scenarios passed", "count", len(scenarios))
	return nil
}

// runScenarios runs every scenario, turning panics into failures, and
// returns the number that failed.
func runScenarios(logger log.Logger, list []scenario) int {
	failed := 0
	for _, s := range list {
		if err := runScenario(s); err != nil {
			failed++
			level.Error(logger).Log("msg", "scenario failed", "scenario", s.name, "err", err)
			continue
		}
		level.Debug(logger).Log("msg", "scenario passed", "scenario", s.name)
	}
	return failed
}

func runScenario(s scenario) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.fn()
}

// unique stands in for an element type that must not be duplicated: every
// value is identified by its address, so a copy would show up as a
// different pointer.
type unique struct {
	id int
}

func generate(n int) *simplevector.Vector[int] {
	v := simplevector.NewReserved[int](simplevector.Reserve(n))
	for i := 1; i <= n; i++ {
		v.PushBack(i)
	}
	return v
}

func expectSize[T any](v *simplevector.Vector[T], size int) error {
	if v.Size() != size {
		return errors.Errorf("size = %d, want %d", v.Size(), size)
	}
	return nil
}

func checkTemporaryConstructor() error {
	v := generate(scenarioSize).Move()
	return expectSize(v, scenarioSize)
}

func checkTemporaryAssignment() error {
	var v simplevector.Vector[int]
	v.MoveFrom(generate(scenarioSize))
	return expectSize(&v, scenarioSize)
}

func checkNamedMoveConstructor() error {
	src := generate(scenarioSize)
	dst := src.Move()
	if err := expectSize(dst, scenarioSize); err != nil {
		return errors.Wrap(err, "destination")
	}
	if src.Size() != 0 || src.Capacity() != 0 {
		return errors.Errorf("source not emptied: size %d, capacity %d", src.Size(), src.Capacity())
	}
	return nil
}

func checkNamedMoveAssignment() error {
	src := generate(scenarioSize)
	dst := simplevector.Of(42)
	dst.MoveFrom(src)
	if err := expectSize(dst, scenarioSize); err != nil {
		return errors.Wrap(err, "destination")
	}
	if !src.IsEmpty() {
		return errors.New("source not emptied")
	}
	return nil
}

func checkUniqueMoveConstructor() error {
	src := simplevector.New[*unique](0)
	for i := 0; i < scenarioSize; i++ {
		src.PushBack(&unique{id: i})
	}
	first := src.Get(0)
	dst := src.Move()
	if err := expectSize(dst, scenarioSize); err != nil {
		return err
	}
	if dst.Get(0) != first {
		return errors.New("element identity changed by move")
	}
	return nil
}

func checkUniquePushBack() error {
	v := simplevector.New[*unique](0)
	items := make([]*unique, scenarioSize)
	for i := range items {
		items[i] = &unique{id: i}
		v.PushBack(items[i])
	}
	if err := expectSize(v, scenarioSize); err != nil {
		return err
	}
	for i, x := range v.All() {
		if x != items[i] || x.id != i {
			return errors.Errorf("element %d changed identity", i)
		}
	}
	return nil
}

func checkUniqueInsert() error {
	v := simplevector.New[*unique](0)
	// at the beginning
	v.Insert(0, &unique{id: scenarioSize + 1})
	if err := expectSize(v, 1); err != nil {
		return err
	}
	// at the end
	v.Insert(v.Size(), &unique{id: scenarioSize + 2})
	// in the middle
	pos := v.Insert(1, &unique{id: scenarioSize + 3})
	if pos != 1 || v.Get(1).id != scenarioSize+3 {
		return errors.New("middle insert landed in the wrong slot")
	}
	want := []int{scenarioSize + 1, scenarioSize + 3, scenarioSize + 2}
	for i, x := range v.All() {
		if x.id != want[i] {
			return errors.Errorf("element %d = %d, want %d", i, x.id, want[i])
		}
	}
	return nil
}

func checkUniqueErase() error {
	v := simplevector.New[*unique](0)
	for i := 0; i < scenarioSize; i++ {
		v.PushBack(&unique{id: i})
	}
	pos := v.Erase(2)
	if v.Get(pos).id != 3 {
		return errors.Errorf("erase returned %d pointing at %d, want 3", pos, v.Get(pos).id)
	}
	return expectSize(v, scenarioSize-1)
}

func checkReserveConstructor() error {
	v := simplevector.NewReserved[int](simplevector.Reserve(5))
	if v.Capacity() != 5 || !v.IsEmpty() {
		return errors.Errorf("capacity %d size %d, want 5 and 0", v.Capacity(), v.Size())
	}
	return nil
}

func checkResize() error {
	v := simplevector.New[int](3)
	v.Resize(10)
	if v.Size() != 10 || v.Capacity() != 10 {
		return errors.Errorf("size %d capacity %d, want 10 and 10", v.Size(), v.Capacity())
	}
	for i := 3; i < 10; i++ {
		if v.Get(i) != 0 {
			return errors.Errorf("element %d = %d, want 0", i, v.Get(i))
		}
	}
	return nil
}

func checkCheckedAccess() error {
	v := simplevector.New[int](3)
	if _, err := v.At(100); !errors.Is(err, simplevector.ErrOutOfRange) {
		return errors.Errorf("At(100) error = %v, want ErrOutOfRange", err)
	}
	return nil
}

func checkEquality() error {
	a := simplevector.Of(1, 2, 3)
	a.Insert(1, 99)
	if !simplevector.Equal(a, simplevector.Of(1, 99, 2, 3)) {
		return errors.Errorf("got %v, want [1 99 2 3]", a)
	}
	if simplevector.Equal(simplevector.Of(1, 2), simplevector.Of(1, 2, 3)) {
		return errors.New("vectors of different sizes compared equal")
	}
	return nil
}
