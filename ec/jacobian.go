// Copyright (c) 2025 The Belstd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package ec

import "github.com/belstd/core/ww"

// jacobian is an internal Jacobian-coordinate point: affine (x, y) =
// (X/Z^2, Y/Z^3). Z == 0 represents the point at infinity.
type jacobian struct {
	X, Y, Z ww.Int
}

func jacobianInfinity() jacobian {
	return jacobian{}
}

func (j jacobian) isInfinity() bool { return j.Z.IsZero() }

func (c *Curve) toJacobian(p Point) jacobian {
	if p.Infinity {
		return jacobianInfinity()
	}
	return jacobian{X: p.X, Y: p.Y, Z: ww.FromUint64(1, c.BitLen)}
}

func (c *Curve) fromJacobian(j jacobian) Point {
	if j.isInfinity() {
		return Point{Infinity: true}
	}
	zInv := j.Z.ModInverse(c.P)
	zInv2 := zInv.MulMod(zInv, c.P)
	zInv3 := zInv2.MulMod(zInv, c.P)
	return Point{
		X: j.X.MulMod(zInv2, c.P),
		Y: j.Y.MulMod(zInv3, c.P),
	}
}

// doubleJacobian computes 2*p via the standard "dbl-2007-bl"-family
// formula, generalized for an arbitrary curve coefficient a.
func (c *Curve) doubleJacobian(p jacobian) jacobian {
	if p.isInfinity() || p.Y.IsZero() {
		return jacobianInfinity()
	}
	P := c.P

	ySq := p.Y.MulMod(p.Y, P)
	s := ww.FromUint64(4, c.BitLen).MulMod(p.X, P).MulMod(ySq, P)

	xSq := p.X.MulMod(p.X, P)
	threeXSq := ww.FromUint64(3, c.BitLen).MulMod(xSq, P)
	zSq := p.Z.MulMod(p.Z, P)
	zPow4 := zSq.MulMod(zSq, P)
	aZ4 := c.A.MulMod(zPow4, P)
	m := threeXSq.AddMod(aZ4, P)

	mSq := m.MulMod(m, P)
	twoS := ww.FromUint64(2, c.BitLen).MulMod(s, P)
	x3 := mSq.SubMod(twoS, P)

	yPow4 := ySq.MulMod(ySq, P)
	eightYPow4 := ww.FromUint64(8, c.BitLen).MulMod(yPow4, P)
	sMinusX3 := s.SubMod(x3, P)
	y3 := m.MulMod(sMinusX3, P).SubMod(eightYPow4, P)

	z3 := ww.FromUint64(2, c.BitLen).MulMod(p.Y, P).MulMod(p.Z, P)

	return jacobian{X: x3, Y: y3, Z: z3}
}

// addJacobian computes p+q via the standard "add-2007-bl" formula,
// falling back to doubling when p == q and to the identity when p == -q.
func (c *Curve) addJacobian(p, q jacobian) jacobian {
	if p.isInfinity() {
		return q
	}
	if q.isInfinity() {
		return p
	}
	P := c.P

	z1z1 := p.Z.MulMod(p.Z, P)
	z2z2 := q.Z.MulMod(q.Z, P)
	u1 := p.X.MulMod(z2z2, P)
	u2 := q.X.MulMod(z1z1, P)
	s1 := p.Y.MulMod(q.Z, P).MulMod(z2z2, P)
	s2 := q.Y.MulMod(p.Z, P).MulMod(z1z1, P)

	h := u2.SubMod(u1, P)
	r := s2.SubMod(s1, P)

	if h.IsZero() {
		if r.IsZero() {
			return c.doubleJacobian(p)
		}
		return jacobianInfinity()
	}

	two := ww.FromUint64(2, c.BitLen)
	r = two.MulMod(r, P)
	i := two.MulMod(h, P).MulMod(two.MulMod(h, P), P)
	j := h.MulMod(i, P)
	v := u1.MulMod(i, P)

	rSq := r.MulMod(r, P)
	x3 := rSq.SubMod(j, P).SubMod(v, P).SubMod(v, P)

	vMinusX3 := v.SubMod(x3, P)
	twoS1J := two.MulMod(s1, P).MulMod(j, P)
	y3 := r.MulMod(vMinusX3, P).SubMod(twoS1J, P)

	zSum := p.Z.AddMod(q.Z, P)
	zSumSq := zSum.MulMod(zSum, P)
	z3 := zSumSq.SubMod(z1z1, P).SubMod(z2z2, P).MulMod(h, P)

	return jacobian{X: x3, Y: y3, Z: z3}
}
