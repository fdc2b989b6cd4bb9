// Package acquire obtains local file trees for scanning. It is the
// repository-acquisition collaborator of the compatibility engine: the
// engine itself never touches the network, so anything that needs
// cloning lives here and hands the engine a plain directory path.
package acquire
