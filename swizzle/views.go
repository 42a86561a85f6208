// SPDX-License-Identifier: MIT
// Package: swizzle
//
// Typed views over a 2-, 3- or 4-component vector.
//
//   - ViewN holds a copy of the source components and carries one getter per
//     valid letter sequence of length 2..4 (both alphabets). Getters return
//     the vector type of the matching length (V2, V3 or V4).
//   - RefN points at the source array and carries one setter per valid
//     sequence whose letters are distinct. Writes land in the source.
//   - Both also offer the runtime forms Read(letters) and, on RefN,
//     Write(letters, vals...), which route through Parse.
//
// The type parameters V2, V3, V4 are the caller's vector types of each
// length; glm instantiates them with its own Vec2/Vec3/Vec4 (or Bool2..4).

package swizzle

// View2 is a read-only swizzle view of a 2-component vector.
type View2[T any, V2 ~[2]T, V3 ~[3]T, V4 ~[4]T] struct {
	c [2]T
}

// New2 returns a read view over a copy of c.
func New2[T any, V2 ~[2]T, V3 ~[3]T, V4 ~[4]T](c [2]T) View2[T, V2, V3, V4] {
	return View2[T, V2, V3, V4]{c: c}
}

// Read returns the components named by letters, in letter order.
// Errors: see Parse.
func (s View2[T, V2, V3, V4]) Read(letters string) ([]T, error) {
	return readLetters(s.c[:], letters)
}

// Ref2 is a write view of a 2-component vector.
// The zero Ref2 has no target; its methods panic.
type Ref2[T any, V2 ~[2]T, V3 ~[3]T, V4 ~[4]T] struct {
	p *[2]T
}

// NewRef2 returns a write view whose setters store into *p.
func NewRef2[T any, V2 ~[2]T, V3 ~[3]T, V4 ~[4]T](p *[2]T) Ref2[T, V2, V3, V4] {
	return Ref2[T, V2, V3, V4]{p: p}
}

// Read returns the current components named by letters, in letter order.
func (s Ref2[T, V2, V3, V4]) Read(letters string) ([]T, error) {
	return readLetters(s.p[:], letters)
}

// Write stores vals into the components named by letters.
// Errors: see Parse and Write; nothing is stored on error.
func (s Ref2[T, V2, V3, V4]) Write(letters string, vals ...T) error {
	return writeLetters(s.p[:], letters, vals)
}

// View3 is a read-only swizzle view of a 3-component vector.
type View3[T any, V2 ~[2]T, V3 ~[3]T, V4 ~[4]T] struct {
	c [3]T
}

// New3 returns a read view over a copy of c.
func New3[T any, V2 ~[2]T, V3 ~[3]T, V4 ~[4]T](c [3]T) View3[T, V2, V3, V4] {
	return View3[T, V2, V3, V4]{c: c}
}

// Read returns the components named by letters, in letter order.
// Errors: see Parse.
func (s View3[T, V2, V3, V4]) Read(letters string) ([]T, error) {
	return readLetters(s.c[:], letters)
}

// Ref3 is a write view of a 3-component vector.
// The zero Ref3 has no target; its methods panic.
type Ref3[T any, V2 ~[2]T, V3 ~[3]T, V4 ~[4]T] struct {
	p *[3]T
}

// NewRef3 returns a write view whose setters store into *p.
func NewRef3[T any, V2 ~[2]T, V3 ~[3]T, V4 ~[4]T](p *[3]T) Ref3[T, V2, V3, V4] {
	return Ref3[T, V2, V3, V4]{p: p}
}

// Read returns the current components named by letters, in letter order.
func (s Ref3[T, V2, V3, V4]) Read(letters string) ([]T, error) {
	return readLetters(s.p[:], letters)
}

// Write stores vals into the components named by letters.
// Errors: see Parse and Write; nothing is stored on error.
func (s Ref3[T, V2, V3, V4]) Write(letters string, vals ...T) error {
	return writeLetters(s.p[:], letters, vals)
}

// View4 is a read-only swizzle view of a 4-component vector.
type View4[T any, V2 ~[2]T, V3 ~[3]T, V4 ~[4]T] struct {
	c [4]T
}

// New4 returns a read view over a copy of c.
func New4[T any, V2 ~[2]T, V3 ~[3]T, V4 ~[4]T](c [4]T) View4[T, V2, V3, V4] {
	return View4[T, V2, V3, V4]{c: c}
}

// Read returns the components named by letters, in letter order.
// Errors: see Parse.
func (s View4[T, V2, V3, V4]) Read(letters string) ([]T, error) {
	return readLetters(s.c[:], letters)
}

// Ref4 is a write view of a 4-component vector.
// The zero Ref4 has no target; its methods panic.
type Ref4[T any, V2 ~[2]T, V3 ~[3]T, V4 ~[4]T] struct {
	p *[4]T
}

// NewRef4 returns a write view whose setters store into *p.
func NewRef4[T any, V2 ~[2]T, V3 ~[3]T, V4 ~[4]T](p *[4]T) Ref4[T, V2, V3, V4] {
	return Ref4[T, V2, V3, V4]{p: p}
}

// Read returns the current components named by letters, in letter order.
func (s Ref4[T, V2, V3, V4]) Read(letters string) ([]T, error) {
	return readLetters(s.p[:], letters)
}

// Write stores vals into the components named by letters.
// Errors: see Parse and Write; nothing is stored on error.
func (s Ref4[T, V2, V3, V4]) Write(letters string, vals ...T) error {
	return writeLetters(s.p[:], letters, vals)
}

// readLetters is the shared body of the runtime Read forms.
func readLetters[T any](src []T, letters string) ([]T, error) {
	p, err := Parse(letters, len(src))
	if err != nil {
		return nil, err
	}
	dst := make([]T, p.Len())
	if err = Read(dst, src, p); err != nil {
		return nil, err
	}

	return dst, nil
}

// writeLetters is the shared body of the runtime Write forms.
func writeLetters[T any](dst []T, letters string, vals []T) error {
	p, err := Parse(letters, len(dst))
	if err != nil {
		return err
	}

	return Write(dst, p, vals)
}
