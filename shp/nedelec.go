// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Nedelec computes the lowest-order Nédélec (Whitney) edge functions of a tet4 cell
//
//   w_e    = sgn_e (S_i G_j - S_j G_i)
//   curl_e = sgn_e 2 G_i × G_j
//
//  Input:
//   sgn -- [nedges] orientation of each local edge (+1 or -1) w.r.t its global direction
//  Output:
//   W -- [nedges][3] edge functions
//   C -- [nedges][3] curl of edge functions
//  Note: must be called after CalcAtIp with derivs == true
func (o *Shape) Nedelec(W, C [][]float64, sgn []float64) {
	for e, lv := range o.EdgeLocalVerts {
		i, j := lv[0], lv[1]
		gi, gj := o.G[i], o.G[j]
		for k := 0; k < 3; k++ {
			W[e][k] = sgn[e] * (o.S[i]*gj[k] - o.S[j]*gi[k])
		}
		C[e][0] = sgn[e] * 2.0 * (gi[1]*gj[2] - gi[2]*gj[1])
		C[e][1] = sgn[e] * 2.0 * (gi[2]*gj[0] - gi[0]*gj[2])
		C[e][2] = sgn[e] * 2.0 * (gi[0]*gj[1] - gi[1]*gj[0])
	}
}
