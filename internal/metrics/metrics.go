package metrics

const Namespace = "rfc_lookup"
