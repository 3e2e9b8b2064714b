package protfasta

var Parse = parse
