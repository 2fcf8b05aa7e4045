// Package specref resolves references across graphs of JSON and YAML
// documents. Documents point into one another with mappings of the
// form
//
//	owner:
//	  $ref: 'users.yaml#/User'
//
// where the target string is a document path, relative to the
// referring document, plus a slash-separated segment path below the
// target's root. Resolution follows such mappings transitively until a
// concrete value is reached, detecting cycles and bounding chain
// length along the way.
//
// The root package holds shortcuts for the common setups:
//
//	g := specref.Open("./api")
//	f, err := specref.Resolve(g, "openapi.yaml#/components/schemas/Pet")
//
// The heavy lifting lives in the subpackages: registry resolves and
// caches, ref models coordinates, parse and encode convert documents,
// load abstracts document sources, overlay patches documents at load
// time, inspect enumerates reference edges, bundle flattens a graph
// into one document, and schema reads fragments as typed schema
// objects.
package specref
