// Package gitlab models GitLab API resources as local objects with
// get/list/create/update/delete operations mapped onto HTTP verbs.
//
// Each resource type is described by a Descriptor: its URL template, the
// operations the API permits on it, the attributes each operation accepts,
// and the child resources reachable from it. A single generic dispatch layer
// consumes those descriptors, so a new resource type is declared rather than
// hand-written.
//
// The network side is a collaborator behind the Connection interface; the
// transport subpackage ships the default implementation.
package gitlab
