// Package quotation contains the quotation aggregate: a forwarder's priced
// offer against an inquiry, its lifecycle status machine, and the cost
// breakdown money object whose rounded sum is the quotation's total price.
package quotation
