/*
Package components defines the shared value types that flow through the
ClientScope registry.

The registry itself stores opaque values; this package only provides the
concrete types used by the built-in catalog kinds and the properties loader:

Instance:
One entry of a multi-valued resolution result:

	for _, in := range instances {
	    interceptor := in.Value.(RequestInterceptor)
	    // in.ID is the registration identifier the entry was added under
	}

Options:
Per-client transport tuning, with library defaults via DefaultOptions():

	opts := components.Options{
	    ConnectTimeout:  time.Second,
	    ReadTimeout:     time.Second,
	    FollowRedirects: false,
	}

LogLevel:
A plain-value severity threshold ("none", "basic", "headers", "full"):

	lvl, err := components.ParseLogLevel("headers")
*/
package components
