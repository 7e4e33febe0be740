package ciquery

import (
	"math"
	"sync"

	"github.com/asrivast28/ramble-go/bnset"
	"github.com/asrivast28/ramble-go/counter"
	"github.com/asrivast28/ramble-go/internal/logger"
)

const defaultAlpha = 0.05

// Result is a CI query result: the degree of freedom and the G² statistic.
type Result struct {
	DF uint32
	G2 float64
}

// PValue returns the derived p-value for r, 1.0 by convention when G²=0.
func (r Result) PValue() float64 {
	if r.G2 == 0 {
		return 1.0
	}
	return 1 - chiSquaredCDF(float64(r.DF), r.G2)
}

// Option configures an Oracle at construction.
type Option func(*Oracle)

// WithAlpha sets the independence threshold (default 0.05).
func WithAlpha(alpha float64) Option {
	return func(o *Oracle) { o.alpha = alpha }
}

// WithLogger injects the logger the Oracle reports scratch-buffer growth
// to (default: no logging).
func WithLogger(log logger.Logger) Option {
	return func(o *Oracle) { o.log = log }
}

// Oracle answers conditional independence queries against a counter.Table.
// It owns scratch buffers that grow monotonically and are reused across
// queries; Query serializes access to them with mu, so a single Oracle may
// safely be shared by the goroutines of a coordinator.Pool or a Global
// round — at the cost of the buffers not being genuinely reused
// concurrently, those callers stay correct rather than merely fast (§5).
type Oracle struct {
	table *counter.Table
	alpha float64
	log   logger.Logger

	mu             sync.Mutex
	cc, cx, cy, cz []int64
}

// NewOracle constructs an Oracle over table with alpha defaulting to 0.05.
func NewOracle(table *counter.Table, opts ...Option) *Oracle {
	o := &Oracle{table: table, alpha: defaultAlpha, log: logger.Null{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Alpha returns the configured independence threshold.
func (o *Oracle) Alpha() float64 { return o.alpha }

// Indep reports whether pv indicates independence: pv > alpha.
func (o *Oracle) Indep(pv float64) bool { return pv > o.alpha }

func (o *Oracle) growBuf(name string, buf []int64, need int) []int64 {
	if cap(buf) >= need {
		return buf[:need]
	}
	newCap := need
	if 2*cap(buf) > newCap {
		newCap = 2 * cap(buf)
	}
	o.log.Trace("ciquery: growing %s scratch buffer from %d to %d elements", name, cap(buf), newCap)
	grown := make([]int64, newCap)
	return grown[:need]
}

// Query computes (df, g²) for "x ⟂ y | given". given must contain neither
// x nor y; callers supply variable indices from the bound table.
func (o *Oracle) Query(x, y int, given []int) (Result, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	n := o.table.N()
	if x < 0 || x >= n || y < 0 || y >= n {
		return Result{}, ErrVariableRange
	}
	for _, z := range given {
		if z < 0 || z >= n {
			return Result{}, ErrVariableRange
		}
	}

	rx, err := o.table.Arity(x)
	if err != nil {
		return Result{}, err
	}
	ry, err := o.table.Arity(y)
	if err != nil {
		return Result{}, err
	}
	colX, err := o.table.Column(x)
	if err != nil {
		return Result{}, err
	}
	colY, err := o.table.Column(y)
	if err != nil {
		return Result{}, err
	}

	m := o.table.M()
	rXi, rYi := int(rx), int(ry)

	// Degree of freedom and total conditioning-state count, built from the
	// given variables' arities.
	df := uint32(rXi-1) * uint32(rYi-1)
	rZTotal := 1
	mult := make([]int, len(given))
	givenCols := make([][]uint8, len(given))
	for k, z := range given {
		rz, err := o.table.Arity(z)
		if err != nil {
			return Result{}, err
		}
		col, err := o.table.Column(z)
		if err != nil {
			return Result{}, err
		}
		givenCols[k] = col
		mult[k] = rZTotal
		rZTotal *= int(rz)
		df *= uint32(rz)
	}

	ccNeed := rZTotal * rXi * rYi
	cxNeed := rZTotal * rXi
	cyNeed := rZTotal * rYi
	o.cc = o.growBuf("cc", o.cc, ccNeed)
	o.cx = o.growBuf("cx", o.cx, cxNeed)
	o.cy = o.growBuf("cy", o.cy, cyNeed)
	o.cz = o.growBuf("cz", o.cz, rZTotal)
	for i := range o.cc[:ccNeed] {
		o.cc[i] = 0
	}
	for i := range o.cx[:cxNeed] {
		o.cx[i] = 0
	}
	for i := range o.cy[:cyNeed] {
		o.cy[i] = 0
	}
	for i := range o.cz[:rZTotal] {
		o.cz[i] = 0
	}

	for i := 0; i < m; i++ {
		zi := 0
		for k, col := range givenCols {
			zi += int(col[i]) * mult[k]
		}
		xi, yi := int(colX[i]), int(colY[i])
		o.cc[zi*rXi*rYi+xi*rYi+yi]++
		o.cx[zi*rXi+xi]++
		o.cy[zi*rYi+yi]++
		o.cz[zi]++
	}

	gSquare := 0.0
	for z := 0; z < rZTotal; z++ {
		sk := o.cz[z]
		if sk == 0 {
			continue
		}
		for a := 0; a < rXi; a++ {
			sik := o.cx[z*rXi+a]
			if sik == 0 {
				continue
			}
			for b := 0; b < rYi; b++ {
				sjk := o.cy[z*rYi+b]
				if sjk == 0 {
					continue
				}
				sijk := o.cc[z*rXi*rYi+a*rYi+b]
				if sijk == 0 {
					continue
				}
				if sijk*sk == sik*sjk {
					continue
				}
				component := float64(sijk) * (math.Log(float64(sijk)) + math.Log(float64(sk)) -
					math.Log(float64(sik)) - math.Log(float64(sjk)))
				gSquare += component
			}
		}
	}
	gSquare *= 2.0

	return Result{DF: df, G2: gSquare}, nil
}

// PValue computes the p-value of "x ⟂ y | given" directly.
func (o *Oracle) PValue(x, y int, given []int) (float64, error) {
	res, err := o.Query(x, y, given)
	if err != nil {
		return 0, err
	}
	return res.PValue(), nil
}
