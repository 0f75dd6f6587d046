// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shapes
func init() {

	// tri3
	factory["tri3"] = &Shape{
		Type:     "tri3",
		Func:     Tri3,
		Gndim:    2,
		Nverts:   3,
		VtkCode:  5,
		FaceType: "lin2",
		NatCoords: [][]float64{
			{0, 1, 0},
			{0, 0, 1},
		},
		FaceLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 0}},
		EdgeLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 0}},
		NipDefault:     3,
	}

	// tet4
	factory["tet4"] = &Shape{
		Type:     "tet4",
		Func:     Tet4,
		Gndim:    3,
		Nverts:   4,
		VtkCode:  10,
		FaceType: "tri3",
		NatCoords: [][]float64{
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
		FaceLocalVerts: [][]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}},
		EdgeLocalVerts: [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
		NipDefault:     4,
	}
}

// Tri3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri3
// elements at {r,s} natural coordinates. The derivatives are calculated only if derivs==true.
//
//    s
//    |
//    2, (0,1)
//    | ',
//    |   ',
//    |     ',
//    |       ',
//    |         ',
//    |           ',
//    |             ',
//    | (0,0)         ', (1,0)
//    0-----------------1 ---- r
//
func Tri3(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	S[0] = 1.0 - r - s
	S[1] = r
	S[2] = s

	if !derivs {
		return
	}

	dSdR[0][0], dSdR[0][1] = -1.0, -1.0
	dSdR[1][0], dSdR[1][1] = 1.0, 0.0
	dSdR[2][0], dSdR[2][1] = 0.0, 1.0
}

// Tet4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tet4
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//              t
//              |
//              3
//             /|`.
//             ||  `,
//            / |    ',
//            | |      \
//           /  |       `.
//           |  |         `,
//          /   |           `,
//          |   |             \
//         /    |              `.
//         |    0.,,_            `,
//        /    /     ``'-.,,__     `.
//        |   /              ``''-.,,_`
//       /   /                        `2-------s
//       | ,'               _,,,,--'''
//       ,'       _,,,--'''
//      1 ,,,--'''
//     /
//    r
//
func Tet4(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s, t := R[0], R[1], R[2]
	S[0] = 1.0 - r - s - t
	S[1] = r
	S[2] = s
	S[3] = t

	if !derivs {
		return
	}

	dSdR[0][0], dSdR[0][1], dSdR[0][2] = -1.0, -1.0, -1.0
	dSdR[1][0], dSdR[1][1], dSdR[1][2] = 1.0, 0.0, 0.0
	dSdR[2][0], dSdR[2][1], dSdR[2][2] = 0.0, 1.0, 0.0
	dSdR[3][0], dSdR[3][1], dSdR[3][2] = 0.0, 0.0, 1.0
}
