package sentiment

// afinn holds AFINN-style integer polarity scores for the vocabulary that
// actually shows up in marketplace reviews. Scores range -5..+5.
var afinn = map[string]int{
	"amazing":       4,
	"awesome":       4,
	"fantastic":     4,
	"outstanding":   5,
	"superb":        5,
	"perfect":       5,
	"excellent":     3,
	"great":         3,
	"good":          3,
	"love":          3,
	"loved":         3,
	"loves":         3,
	"best":          3,
	"wonderful":     4,
	"brilliant":     4,
	"impressive":    3,
	"impressed":     3,
	"happy":         3,
	"satisfied":     2,
	"recommend":     2,
	"recommended":   2,
	"worth":         2,
	"value":         1,
	"nice":          3,
	"fine":          2,
	"solid":         2,
	"sturdy":        2,
	"durable":       2,
	"reliable":      2,
	"comfortable":   2,
	"smooth":        2,
	"fast":          2,
	"quick":         1,
	"easy":          1,
	"useful":        2,
	"helpful":       2,
	"beautiful":     3,
	"premium":       2,
	"quality":       1,
	"authentic":     2,
	"genuine":       2,
	"accurate":      1,
	"affordable":    2,
	"cheap":         -1,
	"cheaper":       -1,
	"bargain":       2,
	"deal":          1,
	"like":          2,
	"liked":         2,
	"likes":         2,
	"pleased":       3,
	"delighted":     4,
	"enjoy":         2,
	"enjoyed":       2,
	"glad":          3,
	"super":         3,
	"cool":          1,
	"fresh":         1,
	"clean":         2,
	"crisp":         1,
	"bright":        1,
	"sharp":         1,
	"stylish":       2,
	"elegant":       2,
	"lightweight":   1,
	"compact":       1,
	"responsive":    2,
	"powerful":      2,
	"efficient":     2,
	"effective":     2,
	"works":         1,
	"working":       1,
	"improved":      2,
	"improvement":   1,
	"upgrade":       1,
	"win":           4,
	"winner":        4,
	"bad":           -3,
	"worse":         -3,
	"worst":         -3,
	"terrible":      -3,
	"horrible":      -3,
	"awful":         -3,
	"poor":          -2,
	"disappointing": -2,
	"disappointed":  -2,
	"disappointment": -2,
	"hate":          -3,
	"hated":         -3,
	"hates":         -3,
	"useless":       -2,
	"waste":         -1,
	"wasted":        -2,
	"broke":         -1,
	"broken":        -1,
	"breaks":        -1,
	"defective":     -3,
	"faulty":        -2,
	"damaged":       -3,
	"damage":        -3,
	"scam":          -2,
	"fraud":         -4,
	"fake":          -3,
	"counterfeit":   -3,
	"refund":        -1,
	"return":        -1,
	"returned":      -1,
	"regret":        -2,
	"avoid":         -1,
	"problem":       -2,
	"problems":      -2,
	"issue":         -2,
	"issues":        -2,
	"defect":        -3,
	"flaw":          -2,
	"flaws":         -2,
	"flimsy":        -2,
	"fragile":       -1,
	"slow":          -2,
	"laggy":         -2,
	"lag":           -1,
	"noisy":         -1,
	"loud":          -1,
	"dirty":         -2,
	"stain":         -1,
	"scratched":     -2,
	"scratch":       -1,
	"dent":          -1,
	"crack":         -2,
	"cracked":       -2,
	"leak":          -2,
	"leaking":       -2,
	"stopped":       -1,
	"dead":          -3,
	"died":          -3,
	"dies":          -3,
	"failure":       -2,
	"failed":        -2,
	"fails":         -2,
	"fail":          -2,
	"error":         -2,
	"errors":        -2,
	"overpriced":    -2,
	"expensive":     -1,
	"pricey":        -1,
	"misleading":    -2,
	"lies":          -2,
	"lie":           -2,
	"rude":          -2,
	"annoying":      -2,
	"annoyed":       -2,
	"frustrating":   -2,
	"frustrated":    -2,
	"uncomfortable": -2,
	"painful":       -2,
	"smell":         -1,
	"smelly":        -2,
	"stink":         -2,
	"stinks":        -2,
	"ugly":          -3,
	"boring":        -3,
	"mediocre":      -1,
	"average":       -1,
	"okay":          1,
	"ok":            1,
	"decent":        1,
	"garbage":       -3,
	"junk":          -3,
	"trash":         -2,
	"rip-off":       -4,
	"ripoff":        -4,
	"missing":       -2,
	"late":          -1,
	"delayed":       -1,
	"wrong":         -2,
	"incorrect":     -2,
	"difficult":     -1,
	"hard":          -1,
	"confusing":     -2,
	"complicated":   -2,
	"unusable":      -3,
	"unreliable":    -2,
	"unacceptable":  -3,
	"pathetic":      -3,
	"cheated":       -3,
	"disgusting":    -3,
	"gross":         -2,
	"weak":          -2,
	"thin":          -1,
	"small":         -1,
	"tight":         -1,
	"loose":         -1,
	"heavy":         -1,
	"bulky":         -1,
}
