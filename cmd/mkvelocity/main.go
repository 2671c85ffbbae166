// Command mkvelocity writes a sample velocity table: a Gaussian pulse advanced
// by implicit Euler steps of the inviscid Burgers equation on a periodic grid,
// one row per time step.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"velplot/table"
)

func main() {
	var (
		outPath string
		nodes   int
		steps   int
		dt      float64
	)
	flag.StringVar(&outPath, "out", table.DefaultPath, "Output table path.")
	flag.IntVar(&nodes, "nodes", 64, "Number of grid points.")
	flag.IntVar(&steps, "steps", 10, "Number of time steps (rows).")
	flag.Float64Var(&dt, "dt", 0.001, "Time step.")
	flag.Parse()

	if nodes < 3 {
		fmt.Fprintln(os.Stderr, "error: -nodes must be at least 3")
		os.Exit(2)
	}

	if err := run(outPath, nodes, steps, dt); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(outPath string, nodes, steps int, dt float64) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", outPath, err)
	}
	if err := write(f, nodes, steps, dt); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %q: %w", outPath, err)
	}
	return f.Close()
}

func write(w io.Writer, nodes, steps int, dt float64) error {
	u := pulse(nodes)
	prev := make([]float64, nodes)
	row := make([]string, nodes)
	s := newSolver(nodes, dt)

	cw := csv.NewWriter(w)
	for i := 0; i < steps; i++ {
		copy(prev, u)
		if err := s.step(u, prev); err != nil {
			return fmt.Errorf("time step %d: %w", i, err)
		}
		for j, v := range u {
			row[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// pulse is exp(-((x-0.5)/0.1)^2) sampled at x = j/n.
func pulse(n int) []float64 {
	u := make([]float64, n)
	for j := range u {
		x := float64(j) / float64(n)
		u[j] = math.Exp(-math.Pow((x-0.5)/0.1, 2))
	}
	return u
}

// solver takes implicit Euler steps of u_t + u u_x = 0 on a periodic grid,
// with the derivative taken in grid-index units. Each step solves
//
//	F_j(x) = x_j - prev_j + dt*x_j*(x_{j+1} - x_{j-1})/2 = 0
//
// by Newton iteration with the exact tridiagonal (plus corner) Jacobian.
type solver struct {
	dt      float64
	tol     float64
	maxIter int

	f   []float64
	jac *mat.Dense
	rhs *mat.VecDense
	dx  *mat.VecDense
}

func newSolver(n int, dt float64) *solver {
	return &solver{
		dt:      dt,
		tol:     1e-7,
		maxIter: 100,
		f:       make([]float64, n),
		jac:     mat.NewDense(n, n, nil),
		rhs:     mat.NewVecDense(n, nil),
		dx:      mat.NewVecDense(n, nil),
	}
}

func (s *solver) residual(out, x, prev []float64) {
	n := len(x)
	for j := range x {
		next := x[(j+1)%n]
		back := x[(j+n-1)%n]
		out[j] = x[j] - prev[j] + s.dt*x[j]*(next-back)*0.5
	}
}

func (s *solver) jacobian(x []float64) {
	n := len(x)
	s.jac.Zero()
	for j := range x {
		next, back := (j+1)%n, (j+n-1)%n
		s.jac.Set(j, j, 1+s.dt*(x[next]-x[back])*0.5)
		s.jac.Set(j, next, s.jac.At(j, next)+s.dt*x[j]*0.5)
		s.jac.Set(j, back, s.jac.At(j, back)-s.dt*x[j]*0.5)
	}
}

// step solves for the next state, starting from prev, and stores it in x.
// It stops once |F|inf + |dx|inf drops below the tolerance.
func (s *solver) step(x, prev []float64) error {
	copy(x, prev)
	for iter := 0; iter < s.maxIter; iter++ {
		s.residual(s.f, x, prev)
		s.jacobian(x)
		for i, v := range s.f {
			s.rhs.SetVec(i, -v)
		}
		if err := s.dx.SolveVec(s.jac, s.rhs); err != nil {
			return fmt.Errorf("newton iteration %d: %w", iter, err)
		}
		for i := range x {
			x[i] += s.dx.AtVec(i)
		}
		if floats.Norm(s.f, math.Inf(1))+mat.Norm(s.dx, math.Inf(1)) < s.tol {
			return nil
		}
	}
	return fmt.Errorf("newton: no convergence after %d iterations", s.maxIter)
}
