/*
Package interop converts between option.Option and the option types of other
popular Go libraries, namely github.com/samber/mo and github.com/IBM/fp-go.

Both libraries know a single form of absence only. Converting towards them maps
option.None as well as option.Nil to their empty value; converting back yields
option.None. A round trip therefore keeps present values and None intact, but
normalizes Nil to None.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package interop
