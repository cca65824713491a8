package extract_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const listingPage = `<html><body>
<section class="Sidebar">
  <ul class="Products CRCD">
    <li>
      <h3><a href="/en/credit-card/Maybank-Platinum.html"> Maybank Platinum </a></h3>
      <dl><dt>Cashback</dt><dd> Up to 5% </dd></dl>
    </li>
    <li>
      <h3><a href="https://ringgitplus.com/en/credit-card/Unknown-Card.html">Unknown Card</a></h3>
      <dl><dt>Annual Fee</dt><dd>Free</dd><dt>Cashback</dt><dd>1%</dd></dl>
    </li>
    <li>
      <h3>Card Without Link</h3>
    </li>
  </ul>
</section>
</body></html>`

const detailPage = `<html><body>
<section class="Summary">
  <dl>
    <dt>Min. Income</dt><dd><span>RM 2,000</span> / month</dd>
    <dt>Annual Fee</dt><dd> RM200 </dd>
  </dl>
</section>
<section class="Tile" id="cashback">
  <table>
    <tr><th>Category</th><th>Rate</th><th>Cap</th><th>Spend</th></tr>
    <tr><td> Dining </td><td><span class="Rate">5%</span> cashback</td><td>RM50</td><td>RM500</td></tr>
    <tr><td>Note only</td></tr>
    <tr><td>Petrol</td><td>2%</td><td>RM20</td><td>RM1,000</td></tr>
  </table>
</section>
<section class="Tile" id="fees">
  <dl>
    <dt>Late Fee</dt><dd><ul><li><span>RM100</span> flat</li></ul></dd>
    <dt>Annual Fee</dt>
    <dd><ul>
      <li><span class="Label">RM200</span> waived on RM8000 spend</li>
      <li><span class="Label">RM0</span>   for supplementary cards </li>
    </ul></dd>
  </dl>
</section>
</body></html>`

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return doc
}
