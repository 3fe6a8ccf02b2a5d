/*
Package calc is a small calculator language built on the public lexer and
parser API. It serves as the demonstration grammar for the lanpy command.

	let x = 2 * (3 + 4);
	print x / 7;
	let greeting = "hello, " + "world";
	print greeting;
	x = -x;
	x;

Numbers are float64, strings are double-quoted without escapes, and + on two
strings concatenates them. Errors during evaluation carry the
EVALUATION_ERROR code.
*/
package calc
