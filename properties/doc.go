/*
Package properties loads declarative per-client configuration into a
ClientScope registry.

A configuration file has one optional "default" section, applied as global
defaults, and any number of named client sections, applied as per-scope
overrides:

	default:
	  log-level: basic
	  connect-timeout: 5000
	  read-timeout: 5000
	clients:
	  billing:
	    log-level: headers
	    connect-timeout: 1000
	    follow-redirects: false
	    retry-attempts: 3
	    retry-backoff: 200

Timeouts and backoff are milliseconds. Values map onto the built-in catalog
kinds: log-level → log-level, the transport values → request-options (unset
values filled from library defaults), retry-attempts/retry-backoff →
retry-policy.

	props, err := properties.Load("clients.yaml")
	if err != nil {
	    return err
	}
	reg := clientscope.New(catalog.Builtin())
	if err := props.Apply(reg); err != nil {
	    return err
	}

Apply belongs to the initialization phase: global defaults are rejected once
the registry has served a resolution.
*/
package properties
