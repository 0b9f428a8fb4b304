/*
Package schema validates serialized errorkit documents with CUE.

The schema is embedded in the package (errorkit.cue) and defines two closed
definitions: #Error for wrapper documents and #Backing for backing documents.
Unknown keys, missing required keys and values of the wrong type are rejected,
and every violation is reported at once.

A Validator can additionally pin the category name and restrict the source to
a closed case set, which is how a consumer enforces its Source taxonomy on data
that crossed a process boundary:

	v, err := schema.For[NetworkError](SourceTransport, SourceDNS)
	if err != nil {
	    return err
	}

	netErr, err := schema.DecodeJSON[NetworkError, NetworkSource](ctx, v, payload)
	if err != nil {
	    // err is an errorkit.KitErr; errorkit.TypeOf(err) is "schemaViolation"
	    // and its reason lists every issue.
	    return err
	}

Failures are errorkit values of the "ErrorKit" category with the "validation"
source, or the "decoding" source when the input is not JSON/YAML at all.
*/
package schema
