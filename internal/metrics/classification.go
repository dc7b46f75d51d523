// internal/metrics/classification.go
// Package metrics computes model performance summaries from paired
// predictions and ground truth.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mwiater/mlmon/internal/confusion"
	"github.com/mwiater/mlmon/internal/prediction"
)

// Classification holds macro-averaged classification metrics.
type Classification struct {
	Accuracy  Float `json:"accuracy"`
	Precision Float `json:"precision"`
	Recall    Float `json:"recall"`
	F1        Float `json:"f1score"`
	MCC       Float `json:"mcc"`
	Samples   int   `json:"samples"`
	Classes   int   `json:"classes"`
}

// ClassStats is the one-vs-rest tally for a single class.
type ClassStats struct {
	Label string `json:"label"`
	TP    int    `json:"true_positives"`
	FP    int    `json:"false_positives"`
	FN    int    `json:"false_negatives"`
	TN    int    `json:"true_negatives"`
}

// PerClass derives one-vs-rest counts for every class of m.
func PerClass(m confusion.Matrix) []ClassStats {
	total := m.Total()
	out := make([]ClassStats, m.Size())
	for i, label := range m.Classes {
		tp := m.Counts[i][i]
		fp := m.ColSum(i) - tp
		fn := m.RowSum(i) - tp
		out[i] = ClassStats{
			Label: label,
			TP:    tp,
			FP:    fp,
			FN:    fn,
			TN:    total - tp - fp - fn,
		}
	}
	return out
}

// ComputeClassification scores pairs with ground truth. Precision and recall
// are macro averages over the classes where the ratio is defined; classes
// that were never predicted (precision) or never present (recall) are left
// out of the average rather than counted as zero. With no usable pairs every
// metric is NaN.
func ComputeClassification(pairs []prediction.Pair) Classification {
	m := confusion.Build(pairs)
	n := m.Total()
	if n == 0 {
		return Classification{
			Accuracy:  NaN(),
			Precision: NaN(),
			Recall:    NaN(),
			F1:        NaN(),
			MCC:       NaN(),
		}
	}

	var precisions, recalls []float64
	for _, c := range PerClass(m) {
		if c.TP+c.FP > 0 {
			precisions = append(precisions, float64(c.TP)/float64(c.TP+c.FP))
		}
		if c.TP+c.FN > 0 {
			recalls = append(recalls, float64(c.TP)/float64(c.TP+c.FN))
		}
	}

	precision := macroAverage(precisions)
	recall := macroAverage(recalls)

	return Classification{
		Accuracy:  Float(float64(m.Correct()) / float64(n)),
		Precision: precision,
		Recall:    recall,
		F1:        harmonicMean(precision, recall),
		MCC:       matthews(m),
		Samples:   n,
		Classes:   m.Size(),
	}
}

func macroAverage(ratios []float64) Float {
	if len(ratios) == 0 {
		return NaN()
	}
	return Float(floats.Sum(ratios) / float64(len(ratios)))
}

// harmonicMean is 2PR/(P+R), zero when P+R is zero.
func harmonicMean(p, r Float) Float {
	if !p.Defined() || !r.Defined() {
		return NaN()
	}
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// matthews computes the multiclass Matthews correlation coefficient:
// (c·s − Σ t_k·p_k) / sqrt((s² − Σ p_k²)(s² − Σ t_k²)), with t_k the number of
// times class k truly occurred and p_k the number of times it was predicted.
func matthews(m confusion.Matrix) Float {
	k := m.Size()
	t := make([]float64, k)
	p := make([]float64, k)
	for i := 0; i < k; i++ {
		t[i] = float64(m.RowSum(i))
		p[i] = float64(m.ColSum(i))
	}
	c := float64(m.Correct())
	s := float64(m.Total())

	numerator := c*s - floats.Dot(t, p)
	denominator := math.Sqrt(s*s-floats.Dot(p, p)) * math.Sqrt(s*s-floats.Dot(t, t))
	return safeRatio(numerator, denominator)
}
