// Package tracing wraps an inplace.Vector so that its mutating operations log
// entry and exit through a slog.Logger. The vector itself never logs.
package tracing

import (
	"context"
	"iter"
	"log/slog"

	"github.com/rawbytedev/inplace"
)

// Vector logs every mutator of the embedded vector at debug level. Read-only
// methods pass through untraced.
type Vector[T, S any] struct {
	*inplace.Vector[T, S]
	log *slog.Logger
}

// Wrap traces v through logger. A nil logger uses slog.Default().
func Wrap[T, S any](v *inplace.Vector[T, S], logger *slog.Logger) *Vector[T, S] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Vector[T, S]{Vector: v, log: logger}
}

// enter logs the start of op and returns the matching exit logger.
func (t *Vector[T, S]) enter(op string, attrs ...slog.Attr) func(error) {
	ctx := context.Background()
	if !t.log.Enabled(ctx, slog.LevelDebug) {
		return func(error) {}
	}
	before := t.Len()
	t.log.LogAttrs(ctx, slog.LevelDebug, "enter", append(attrs, slog.String("op", op), slog.Int("len", before))...)
	return func(err error) {
		out := []slog.Attr{slog.String("op", op), slog.Int("len_before", before), slog.Int("len", t.Len())}
		if err != nil {
			out = append(out, slog.Any("error", err))
		}
		t.log.LogAttrs(ctx, slog.LevelDebug, "exit", out...)
	}
}

func (t *Vector[T, S]) PushBack(value T) (*T, error) {
	done := t.enter("push_back")
	p, err := t.Vector.PushBack(value)
	done(err)
	return p, err
}

func (t *Vector[T, S]) TryPushBack(value T) *T {
	done := t.enter("try_push_back")
	p := t.Vector.TryPushBack(value)
	done(nil)
	return p
}

func (t *Vector[T, S]) UncheckedPushBack(value T) *T {
	done := t.enter("unchecked_push_back")
	p := t.Vector.UncheckedPushBack(value)
	done(nil)
	return p
}

func (t *Vector[T, S]) EmplaceBack(fn func(*T) error) (*T, error) {
	done := t.enter("emplace_back")
	p, err := t.Vector.EmplaceBack(fn)
	done(err)
	return p, err
}

func (t *Vector[T, S]) TryEmplaceBack(fn func(*T) error) (*T, error) {
	done := t.enter("try_emplace_back")
	p, err := t.Vector.TryEmplaceBack(fn)
	done(err)
	return p, err
}

func (t *Vector[T, S]) UncheckedEmplaceBack(fn func(*T) error) (*T, error) {
	done := t.enter("unchecked_emplace_back")
	p, err := t.Vector.UncheckedEmplaceBack(fn)
	done(err)
	return p, err
}

func (t *Vector[T, S]) PopBack() {
	done := t.enter("pop_back")
	t.Vector.PopBack()
	done(nil)
}

func (t *Vector[T, S]) Clear() {
	done := t.enter("clear")
	t.Vector.Clear()
	done(nil)
}

func (t *Vector[T, S]) Append(src ...T) error {
	done := t.enter("append", slog.Int("count", len(src)))
	err := t.Vector.Append(src...)
	done(err)
	return err
}

func (t *Vector[T, S]) TryAppend(src []T) ([]T, error) {
	done := t.enter("try_append", slog.Int("count", len(src)))
	rest, err := t.Vector.TryAppend(src)
	done(err)
	return rest, err
}

func (t *Vector[T, S]) Resize(n int) error {
	done := t.enter("resize", slog.Int("n", n))
	err := t.Vector.Resize(n)
	done(err)
	return err
}

func (t *Vector[T, S]) ResizeWith(n int, value T) error {
	done := t.enter("resize", slog.Int("n", n))
	err := t.Vector.ResizeWith(n, value)
	done(err)
	return err
}

func (t *Vector[T, S]) Assign(src ...T) error {
	done := t.enter("assign", slog.Int("count", len(src)))
	err := t.Vector.Assign(src...)
	done(err)
	return err
}

func (t *Vector[T, S]) AssignN(n int, value T) error {
	done := t.enter("assign", slog.Int("count", n))
	err := t.Vector.AssignN(n, value)
	done(err)
	return err
}

func (t *Vector[T, S]) AssignSeq(seq iter.Seq[T]) error {
	done := t.enter("assign_seq")
	err := t.Vector.AssignSeq(seq)
	done(err)
	return err
}

func (t *Vector[T, S]) Erase(first, last int) int {
	done := t.enter("erase", slog.Int("first", first), slog.Int("last", last))
	i := t.Vector.Erase(first, last)
	done(nil)
	return i
}

func (t *Vector[T, S]) EraseAt(i int) int {
	return t.Erase(i, i+1)
}

func (t *Vector[T, S]) Insert(pos int, src ...T) (int, error) {
	done := t.enter("insert", slog.Int("pos", pos), slog.Int("count", len(src)))
	i, err := t.Vector.Insert(pos, src...)
	done(err)
	return i, err
}

func (t *Vector[T, S]) InsertN(pos, n int, value T) (int, error) {
	done := t.enter("insert", slog.Int("pos", pos), slog.Int("count", n))
	i, err := t.Vector.InsertN(pos, n, value)
	done(err)
	return i, err
}

func (t *Vector[T, S]) Emplace(pos int, fn func(*T) error) (int, error) {
	done := t.enter("emplace", slog.Int("pos", pos))
	i, err := t.Vector.Emplace(pos, fn)
	done(err)
	return i, err
}

func (t *Vector[T, S]) Swap(other *inplace.Vector[T, S]) {
	done := t.enter("swap", slog.Int("other_len", other.Len()))
	t.Vector.Swap(other)
	done(nil)
}

func (t *Vector[T, S]) CopyFrom(src *inplace.Vector[T, S]) error {
	done := t.enter("copy_from", slog.Int("src_len", src.Len()))
	err := t.Vector.CopyFrom(src)
	done(err)
	return err
}

func (t *Vector[T, S]) MoveFrom(src *inplace.Vector[T, S]) {
	done := t.enter("move_from", slog.Int("src_len", src.Len()))
	t.Vector.MoveFrom(src)
	done(nil)
}
