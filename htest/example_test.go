package htest_test

import (
	"fmt"

	"github.com/denstat/denstat/htest"
)

// //////////////////////////////////////////////////////////////////////
// Scenario: a roastery tracks daily espresso pulls. The barista claims the
// long-run average is 30 pulls a day; a week of observations says otherwise.
// A one-sample t-test tells us whether the week is evidence or noise.
// //////////////////////////////////////////////////////////////////////

func ExampleOneSampleTTest() {
	pulls := []float64{34, 28, 35, 31, 33, 36, 32}

	res, err := htest.OneSampleTTest(pulls, 30)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("t=%.3f df=%.0f\n", res.Statistic, res.DF)
	fmt.Printf("reject at 5%%: %v\n", res.P < 0.05)

	// Output:
	// t=2.669 df=6
	// reject at 5%: true
}

// //////////////////////////////////////////////////////////////////////
// Scenario: how many customers must we survey to pin the share of oat-milk
// drinkers within ±5 points at 95% confidence? With no prior estimate we
// assume the worst case p=0.5; knowing the town only has 1000 regulars
// shrinks the answer via the finite population correction.
// //////////////////////////////////////////////////////////////////////

func ExampleSampleSizeProportion() {
	n, err := htest.SampleSizeProportion(0.95, 0.05, 0.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("unbounded population:", n)

	n, err = htest.SampleSizeProportion(0.95, 0.05, 0.5, htest.WithPopulation(1000))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("1000 regulars:", n)

	// Output:
	// unbounded population: 385
	// 1000 regulars: 278
}

// //////////////////////////////////////////////////////////////////////
// Scenario: a die is rolled 60 times. Under fairness every face is expected
// 10 times; the goodness-of-fit test scores how far the tally strays.
// //////////////////////////////////////////////////////////////////////

func ExampleChiSquareGoodnessOfFit() {
	observed := []float64{8, 9, 10, 11, 12, 10}
	expected := []float64{10, 10, 10, 10, 10, 10}

	res, err := htest.ChiSquareGoodnessOfFit(observed, expected)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("chi2=%.1f df=%.0f\n", res.Statistic, res.DF)
	fmt.Printf("fair at 5%%: %v\n", res.P >= 0.05)

	// Output:
	// chi2=1.0 df=5
	// fair at 5%: true
}

// //////////////////////////////////////////////////////////////////////
// Scenario: the machine's shot weight is known to vary with sigma = 0.8 g.
// A z-test checks a morning's shots against the 18 g dial-in target.
// //////////////////////////////////////////////////////////////////////

func ExampleZTest() {
	shots := []float64{18.2, 17.9, 18.4, 18.1, 18.3, 18.0, 18.2, 18.1}

	res, err := htest.ZTest(shots, 18, 0.8)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("z=%.3f\n", res.Statistic)
	fmt.Printf("two-sided p > 0.4: %v\n", res.P > 0.4)

	// Output:
	// z=0.530
	// two-sided p > 0.4: true
}
